package pricing

import (
	"github.com/knows-studios/KNS-BookingService/internal/domain"
)

// CatalogReader интерфейс каталога, необходимый калькулятору
type CatalogReader interface {
	PackageByID(id string) (domain.Package, bool)
	AddOnByID(id string) (domain.AddOn, bool)
}

// Quote результат расчета стоимости бронирования
type Quote struct {
	Total   int64 // полная стоимость
	Deposit int64 // предоплата, округление half-up
}

// Calculator вычисляет стоимость бронирования по каталогу.
// Чистая функция без побочных эффектов, безопасно вызывать на каждый запрос.
type Calculator struct {
	catalog CatalogReader
}

// NewCalculator создает новый калькулятор стоимости
func NewCalculator(catalog CatalogReader) *Calculator {
	return &Calculator{catalog: catalog}
}

// Quote считает полную стоимость и предоплату для выбранного пакета и допуслуг.
//
// Неизвестные идентификаторы (пакета или допуслуги) вносят нулевую стоимость
// и не являются ошибкой: устаревший id после обновления каталога не должен
// ронять расчет.
func (c *Calculator) Quote(packageID string, addOnIDs []string) Quote {
	var total int64

	if pkg, ok := c.catalog.PackageByID(packageID); ok {
		total += pkg.BasePrice
	}

	for _, id := range addOnIDs {
		if addOn, ok := c.catalog.AddOnByID(id); ok {
			total += addOn.Price
		}
	}

	return Quote{
		Total:   total,
		Deposit: depositOf(total),
	}
}

// depositOf считает предоплату как DepositRatePercent от суммы.
// Округление half-up в целочисленной арифметике:
// deposit = round(total * rate / 100) = (total*rate + 50) / 100.
func depositOf(total int64) int64 {
	return (total*domain.DepositRatePercent + 50) / 100
}
