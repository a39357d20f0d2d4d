package application

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/config"
	"github.com/rocketscienceinc/tictactoe-timetravel/testing/suite"
)

func TestRunApp(t *testing.T) {
	// Given: default config and a scripted session
	_, st := suite.New(t)
	conf := &config.Config{LogLevel: "info", Game: st.Config}
	input := strings.NewReader("play 0\nplay 1\nplay 2\nplay 4\nplay 3\nplay 5\nplay 7\nplay 6\nplay 8\nquit\n")

	// When: running the app
	var out bytes.Buffer
	err := RunApp(st.Logger, conf, input, &out)

	// Then: the game ends in a draw
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Draw!")
	assert.Contains(t, out.String(), "  Current Move #9\n")
}
