package availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных (ошибка
	// вызывающей стороны, а не вердикт планирования)
	ErrInvalidInput = errors.New("availability: invalid input")

	// ErrDataInconsistency возвращается, когда строки конфигурации или записи
	// не пригодны для принятия решения (битое время, нулевая длительность).
	// Угадывать здесь небезопасно, поэтому ошибка поднимается наверх вместо
	// молчаливого Available/Blocked.
	ErrDataInconsistency = errors.New("availability: inconsistent schedule data")
)
