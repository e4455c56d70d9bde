package slideshow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewManagerDefaults(t *testing.T) {
	m := NewManager(0, nil)
	assert.Equal(t, DefaultInterval, m.Interval())
	assert.False(t, m.IsPaused(), "rotation starts playing")

	m = NewManager(5*time.Second, nil)
	assert.Equal(t, 5*time.Second, m.Interval())
}

func TestTogglePlayPause(t *testing.T) {
	m := NewManager(time.Second, nil)
	m.TogglePlayPause()
	assert.True(t, m.IsPaused())
	m.TogglePlayPause()
	assert.False(t, m.IsPaused())
}

func TestPauseForOperationAndResume(t *testing.T) {
	m := NewManager(time.Second, nil)

	m.Pause(true)
	assert.True(t, m.IsPaused())
	m.ResumeAfterOperation()
	assert.False(t, m.IsPaused(), "was playing before the operation")

	m.TogglePlayPause() // user pause
	m.Pause(true)
	m.ResumeAfterOperation()
	assert.True(t, m.IsPaused(), "stays paused; user had paused before the operation")
}

func TestUserToggleOverridesOperationState(t *testing.T) {
	m := NewManager(time.Second, nil)
	m.Pause(true)
	m.TogglePlayPause() // user resumes mid-operation
	m.ResumeAfterOperation()
	assert.False(t, m.IsPaused())
}
