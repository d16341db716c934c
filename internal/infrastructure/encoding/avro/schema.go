package avro

// OrderPlacedSchema describes the event produced for every accepted order.
// Money stays a string so the 2-decimal total is carried exactly as stored.
const OrderPlacedSchema = `{
	"type": "record",
	"name": "OrderPlaced",
	"namespace": "farmhub.order",
	"fields": [
		{"name": "order_id", "type": "string"},
		{"name": "shop", "type": "string", "default": ""},
		{"name": "product_name", "type": "string"},
		{"name": "supplier_name", "type": "string", "default": ""},
		{"name": "quantity", "type": "long"},
		{"name": "total", "type": "string"},
		{"name": "customer_name", "type": "string"},
		{"name": "phone", "type": "string"},
		{"name": "address", "type": "string"},
		{"name": "ordered_at", "type": "string"},
		{"name": "status", "type": "string", "default": "Pending"}
	]
}`
