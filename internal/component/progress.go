// internal/component/progress.go
package component

// Progress — счётчики фаз и волн.
type Progress struct {
	Phase        int // растёт монотонно, начиная с 1
	Wave         int // индекс следующей волны внутри фазы
	Multiplicand int
	PacingTimer  float64 // время с последней волны
	Countdown    float64 // пауза перед началом фазы
	BossAlive    bool
}
