package event

type Type string

const (
	TypeItemCreated       Type = "item.created"
	TypeItemUpdated       Type = "item.updated"
	TypeItemDeleted       Type = "item.deleted"
	TypeItemRecovered     Type = "item.recovered"
	TypeItemPurged        Type = "item.purged"
	TypeItemsDeleted      Type = "items.deleted"
	TypeItemsRecovered    Type = "items.recovered"
	TypeTenancyExpired    Type = "tenancy.expired"
	TypeOwnershipExtended Type = "ownership.extended"
)

type Event struct {
	ID        string `json:"id"`
	Type      Type   `json:"type"`
	Payload   any    `json:"payload"`
	Timestamp string `json:"timestamp"`
}

type Bus interface {
	Publish(e Event)
	Subscribe() (<-chan Event, func()) // Returns channel and unsubscribe function
}
