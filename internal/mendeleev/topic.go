package mendeleev

import "fmt"

// DefaultTopicPrefix is the root of every topic the bridge publishes.
const DefaultTopicPrefix = "mendeleev"

// Topics builds MQTT topics for cabinets.
//
//	topics := mendeleev.Topics{Prefix: "mendeleev"}
//	topics.SetColor(mendeleev.He) // "mendeleev/2/setcolor"
type Topics struct {
	Prefix string
}

func (t Topics) prefix() string {
	if t.Prefix == "" {
		return DefaultTopicPrefix
	}
	return t.Prefix
}

// SetColor returns the topic carrying the channel values of a cabinet.
func (t Topics) SetColor(e Element) string {
	return fmt.Sprintf("%s/%d/setcolor", t.prefix(), int(e))
}

// Status returns the retained bridge online/offline topic.
func (t Topics) Status() string {
	return fmt.Sprintf("%s/bridge/status", t.prefix())
}
