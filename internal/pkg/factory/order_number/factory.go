package order_number

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	suffixMin = 1000
	suffixMax = 9999
)

// NumberFactory выдаёт человекочитаемый номер заказа вида ORD-YYMMDD-NNNN.
// Уникальность гарантирует индекс в БД, при коллизии сервис генерирует номер заново.
type NumberFactory struct {
	suffix func() int
}

func New() *NumberFactory {
	return &NumberFactory{
		suffix: func() int {
			return suffixMin + rand.IntN(suffixMax-suffixMin+1)
		},
	}
}

func (f *NumberFactory) Generate(now time.Time) string {
	return fmt.Sprintf("ORD-%s-%04d", now.Format("060102"), f.suffix())
}
