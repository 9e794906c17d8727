package league

import "fmt"

const (
	FirstPrize = 1600.0
	LastPrize  = 200.0
)

// Prizes returns the purse for each final rank of an n-team league,
// decreasing linearly from FirstPrize to LastPrize.
func Prizes(n int) []float64 {
	if n <= 0 {
		return nil
	}
	var step float64
	if n > 1 {
		step = (FirstPrize - LastPrize) / float64(n-1)
	}
	prizes := make([]float64, n)
	for i := range prizes {
		prizes[i] = FirstPrize - float64(i)*step
	}
	return prizes
}

func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
