package services

import (
	"fmt"
	"strconv"

	"github.com/pocketbase/pocketbase/core"
)

const quoteCounterName = "quote_number"

// NextQuoteNumber returns the next sequential quote number, starting at "1"
// on an empty store. The counter row is incremented and saved inside a
// transaction so concurrent creations never hand out the same number. A
// number, once assigned to a quote, is never reused or changed.
func NextQuoteNumber(app core.App) (string, error) {
	var number string

	err := app.RunInTransaction(func(txApp core.App) error {
		records, err := txApp.FindRecordsByFilter(
			"counters",
			"name = {:name}",
			"",
			1,
			0,
			map[string]any{"name": quoteCounterName},
		)
		if err != nil {
			return fmt.Errorf("find counter: %w", err)
		}

		var counter *core.Record
		if len(records) > 0 {
			counter = records[0]
		} else {
			col, err := txApp.FindCollectionByNameOrId("counters")
			if err != nil {
				return fmt.Errorf("counters collection: %w", err)
			}
			counter = core.NewRecord(col)
			counter.Set("name", quoteCounterName)
			counter.Set("value", 0)
		}

		next := int(counter.GetFloat("value")) + 1
		counter.Set("value", next)
		if err := txApp.Save(counter); err != nil {
			return fmt.Errorf("save counter: %w", err)
		}

		number = strconv.Itoa(next)
		return nil
	})
	if err != nil {
		return "", err
	}
	return number, nil
}
