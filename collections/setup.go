package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the company, quotes, quote_items and
// counters collections exist.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "company", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name_ar", Required: true})
		c.Fields.Add(&core.TextField{Name: "name_en", Required: false})
		c.Fields.Add(&core.TextField{Name: "description_ar", Required: false})
		c.Fields.Add(&core.TextField{Name: "description_en", Required: false})
		c.Fields.Add(&core.TextField{Name: "tax_number", Required: false})
		c.Fields.Add(&core.TextField{Name: "street", Required: false})
		c.Fields.Add(&core.TextField{Name: "neighborhood", Required: false})
		c.Fields.Add(&core.TextField{Name: "country", Required: false})
		c.Fields.Add(&core.TextField{Name: "city", Required: false})
		c.Fields.Add(&core.TextField{Name: "commercial_registration", Required: false})
		c.Fields.Add(&core.TextField{Name: "building", Required: false})
		c.Fields.Add(&core.TextField{Name: "postal_code", Required: false})
		c.Fields.Add(&core.TextField{Name: "additional_number", Required: false})
		c.Fields.Add(&core.TextField{Name: "email", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone1", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone2", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone3", Required: false})
		c.Fields.Add(&core.TextField{Name: "logo_path", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	quotes := ensureCollection(app, "quotes", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "quote_number", Required: true})
		c.Fields.Add(&core.TextField{Name: "customer_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "customer_tax_number", Required: false})
		c.Fields.Add(&core.TextField{Name: "customer_street", Required: false})
		c.Fields.Add(&core.TextField{Name: "customer_neighborhood", Required: false})
		c.Fields.Add(&core.TextField{Name: "customer_country", Required: false})
		c.Fields.Add(&core.TextField{Name: "customer_city", Required: false})
		c.Fields.Add(&core.TextField{Name: "customer_commercial_registration", Required: false})
		c.Fields.Add(&core.TextField{Name: "customer_building", Required: false})
		c.Fields.Add(&core.TextField{Name: "customer_postal_code", Required: false})
		c.Fields.Add(&core.TextField{Name: "customer_additional_number", Required: false})
		c.Fields.Add(&core.TextField{Name: "customer_phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "project_description", Required: false})
		c.Fields.Add(&core.TextField{Name: "location", Required: false})
		c.Fields.Add(&core.NumberField{Name: "subtotal", Required: false})
		c.Fields.Add(&core.NumberField{Name: "tax_amount", Required: false})
		c.Fields.Add(&core.NumberField{Name: "total_amount", Required: false})
		c.Fields.Add(&core.TextField{Name: "notes", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "quote_items", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "quote",
			Required:      true,
			CollectionId:  quotes.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
		c.Fields.Add(&core.TextField{Name: "description", Required: true})
		c.Fields.Add(&core.NumberField{Name: "quantity", Required: true})
		c.Fields.Add(&core.TextField{Name: "unit", Required: false})
		c.Fields.Add(&core.NumberField{Name: "unit_price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "total_price", Required: false})
	})

	ensureCollection(app, "counters", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.NumberField{Name: "value", Required: false})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
