package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatcher_DeliversToSubscribers(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(BossDefeated, a)
	d.Subscribe(BossDefeated, b)
	d.Subscribe(GameOver, b)

	d.Dispatch(Event{Type: BossDefeated, Data: BossDefeatedData{Archetype: 1}})

	assert.Len(t, a.got, 1)
	assert.Len(t, b.got, 1)
	assert.Equal(t, 1, a.got[0].Data.(BossDefeatedData).Archetype)
}

func TestDispatcher_Unsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(PlayerLifeLost, r)
	d.Unsubscribe(PlayerLifeLost, r)

	d.Dispatch(Event{Type: PlayerLifeLost})

	assert.Empty(t, r.got)
}

func TestDispatcher_ListenerFuncAndEmit(t *testing.T) {
	d := NewDispatcher()
	var phases []int
	d.Subscribe(PhaseAdvanced, ListenerFunc(func(e Event) {
		phases = append(phases, e.Data.(PhaseData).Phase)
	}))
	r := &recorder{}
	d.Subscribe(PhaseAdvanced, r)
	d.Unsubscribe(PhaseAdvanced, r)

	d.Emit(PhaseAdvanced, PhaseData{Phase: 2})
	d.Emit(PhaseAdvanced, PhaseData{Phase: 3})

	assert.Equal(t, []int{2, 3}, phases)
	assert.Empty(t, r.got)
}
