package payload

import "fmt"

type SMS struct {
	Number  string
	Message string
}

func (SMS) Mode() Mode { return ModeSMS }

func (p SMS) Format() (string, error) {
	return fmt.Sprintf("SMSTO:%s:%s", p.Number, p.Message), nil
}
