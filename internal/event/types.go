// internal/event/types.go
package event

const (
	EnemyKilled      EventType = "EnemyKilled"      // Обычный враг уничтожен
	BossDefeated     EventType = "BossDefeated"     // Последовательность гибели босса завершена
	PhaseAdvanced    EventType = "PhaseAdvanced"    // Началась новая фаза
	WaveSpawned      EventType = "WaveSpawned"      // Волна появилась на поле
	UpgradeCollected EventType = "UpgradeCollected" // Игрок подобрал бонус
	PlayerLifeLost   EventType = "PlayerLifeLost"   // Корабль уничтожен, жизнь потеряна
	GameOver         EventType = "GameOver"         // Жизни закончились
)

// EnemyKilledData — данные события EnemyKilled.
type EnemyKilledData struct {
	Tier  int
	Score int
}

// BossDefeatedData — данные события BossDefeated.
type BossDefeatedData struct {
	Archetype int
	Strength  int
	Score     int
}

// PhaseData — данные событий PhaseAdvanced и WaveSpawned.
type PhaseData struct {
	Phase        int
	Wave         int
	Multiplicand int
}
