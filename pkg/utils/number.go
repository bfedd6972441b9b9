package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ToMinorUnits converte um valor monetário para unidades menores da moeda
// (a plataforma externa espera orçamentos como inteiro de centavos)
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
