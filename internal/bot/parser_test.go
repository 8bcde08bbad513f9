package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	parser := NewCommandParser()

	tests := []struct {
		name      string
		text      string
		wantCmd   string
		wantArgs  []string
		isCommand bool
	}{
		{"слэш-команда", "/my_weekly_rank", "my_weekly_rank", nil, true},
		{"команда с @botname", "/top5_weekly@activity_bot", "top5_weekly", nil, true},
		{"команда с аргументом", "/add_supervisor 12345", "add_supervisor", []string{"12345"}, true},
		{"восклицательный префикс", "!my_rank", "my_rank", nil, true},
		{"точка-префикс", ".help", "help", nil, true},
		{"регистр приводится к нижнему", "/TOP20_MONTHLY", "top20_monthly", nil, true},
		{"пробелы вокруг", "  /start  ", "start", nil, true},
		{"обычный текст", "привет как дела", "", nil, false},
		{"пустая строка", "", "", nil, false},
		{"один префикс без команды", "/", "", nil, false},
		{"несколько аргументов", "!add_supervisor 1 2", "add_supervisor", []string{"1", "2"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args, isCommand := parser.ParseCommand(tt.text)
			assert.Equal(t, tt.isCommand, isCommand)
			assert.Equal(t, tt.wantCmd, cmd)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
