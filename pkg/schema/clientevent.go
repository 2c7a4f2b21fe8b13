package schema

const ClientEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "marketplace",
	"name": "client_event",
	"fields" : [
		{"name": "event_type", "type": "string"},
		{"name": "product_id", "type": "string"},
		{"name": "session_id", "type": "string"},
		{"name": "occurred_at", "type": "string"}
	]
}`

// ClientEventV1 is the analytics wire record. OccurredAt is RFC 3339 in
// UTC; ProductID is empty for events without a product context.
type ClientEventV1 struct {
	EventType  string `avro:"event_type"`
	ProductID  string `avro:"product_id"`
	SessionID  string `avro:"session_id"`
	OccurredAt string `avro:"occurred_at"`
}
