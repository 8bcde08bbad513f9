package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_AllowsUpToLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	defer rl.Close()

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow(1), "запрос %d в пределах лимита", i+1)
	}
	assert.False(t, rl.Allow(1), "четвёртый запрос за окно отклоняется")
}

func TestRateLimiter_PerUser(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Close()

	assert.True(t, rl.Allow(1))
	assert.False(t, rl.Allow(1))
	// Лимит другого пользователя независим
	assert.True(t, rl.Allow(2))
}

// Close идемпотентен и сигнализирует горутине очистки о завершении.
// Защита от повторного вызова нужна: бот закрывает лимитер через defer
// на любом пути выхода из цикла обработки.
func TestRateLimiter_CloseStopsCleanup(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)

	rl.Close()
	rl.Close()

	select {
	case <-rl.stopCh:
		// канал закрыт, cleanup выйдет из select
	default:
		t.Fatal("stopCh не закрыт после Close")
	}
}

func TestRateLimiter_WindowSlides(t *testing.T) {
	rl := NewRateLimiter(1, 20*time.Millisecond)
	defer rl.Close()

	assert.True(t, rl.Allow(1))
	assert.False(t, rl.Allow(1))

	time.Sleep(30 * time.Millisecond)
	assert.True(t, rl.Allow(1), "после окна лимит освобождается")
}
