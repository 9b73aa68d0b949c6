package payment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var ErrUnknownMethod = errors.New("unknown payment method")

type Method string

const (
	MethodOrangeMoney Method = "orange_money"
	MethodMTNMoMo     Method = "mtn_momo"
	MethodMoovMoney   Method = "moov_money"
	MethodWave        Method = "wave"
	MethodCard        Method = "card"
	MethodCash        Method = "cash"
)

var methods = map[Method]struct{}{
	MethodOrangeMoney: {},
	MethodMTNMoMo:     {},
	MethodMoovMoney:   {},
	MethodWave:        {},
	MethodCard:        {},
	MethodCash:        {},
}

func ParseMethod(raw string) (Method, error) {
	m := Method(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "-", "_"))
	if _, ok := methods[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, raw)
	}
	return m, nil
}

// Reference returns the caller-supplied gateway reference, or a generated
// one when the gateway did not hand one back.
func Reference(raw string) string {
	if ref := strings.TrimSpace(raw); ref != "" {
		return ref
	}
	return fmt.Sprintf("pay-%s", uuid.NewString())
}
