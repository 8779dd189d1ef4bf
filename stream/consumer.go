package stream

import "fmt"

// Consumer names a member of a consumer group. Both the group and the
// consumer name are required. Consumer values are immutable.
type Consumer struct {
	group string
	name  string
}

// NewConsumer builds a Consumer. Both group and name must be non-empty.
func NewConsumer(group, name string) (Consumer, error) {
	if group == "" {
		return Consumer{}, fmt.Errorf("stream: consumer requires a non-empty group")
	}
	if name == "" {
		return Consumer{}, fmt.Errorf("stream: consumer requires a non-empty name")
	}
	return Consumer{group: group, name: name}, nil
}

// MustConsumer is like NewConsumer but panics on invalid input.
func MustConsumer(group, name string) Consumer {
	c, err := NewConsumer(group, name)
	if err != nil {
		panic(err)
	}
	return c
}

// Group returns the consumer group name.
func (c Consumer) Group() string {
	return c.group
}

// Name returns the consumer name within the group.
func (c Consumer) Name() string {
	return c.name
}

// IsZero reports whether the consumer is the zero value.
func (c Consumer) IsZero() bool {
	return c.group == "" && c.name == ""
}

// String implements fmt.Stringer.
func (c Consumer) String() string {
	return c.group + "/" + c.name
}
