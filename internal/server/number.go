package server

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iwvelando/compound-interest/pkg/rates"
)

// localizedNumber accepts either a JSON number or a string typed the way the
// form shows it, such as "8,5", "1.234,56" or "R$ 1.000,00".
type localizedNumber float64

func (n *localizedNumber) UnmarshalJSON(data []byte) error {
	var number float64
	if err := json.Unmarshal(data, &number); err == nil {
		*n = localizedNumber(number)
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("expected number or string, got %s", string(data))
	}

	text = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text), "R$"))
	if text == "" {
		*n = 0
		return nil
	}

	parsed, err := rates.ParseStrict(text)
	if err != nil {
		return err
	}
	*n = localizedNumber(parsed)
	return nil
}
