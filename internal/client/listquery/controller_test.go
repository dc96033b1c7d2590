package listquery

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addiskitchen/platform/internal/client/notify"
)

func newTestController(initial Query) (*Controller, *notify.Center, *[]Query) {
	var navigated []Query
	center := notify.NewCenter(time.Minute)
	c := NewController(initial, NavigatorFunc(func(q Query) {
		navigated = append(navigated, q)
	}), center)
	return c, center, &navigated
}

func TestController_ChangeRoute(t *testing.T) {
	initial := ParseQuery(url.Values{"searchTerm": {"tibs"}})
	c, _, navigated := newTestController(initial)

	c.ChangeRoute(map[string]string{"page": "3"})
	c.ChangeRoute(map[string]string{"limit": "20"})

	q := c.Query()
	assert.Equal(t, 3, q.Page())
	assert.Equal(t, 20, q.Limit(10))
	assert.Equal(t, "tibs", q.Get("searchTerm"))
	assert.Len(t, *navigated, 2)
}

func TestController_ToggleSuccess(t *testing.T) {
	c, center, _ := newTestController(NewQuery())

	local := false
	c.Toggle(context.Background(), local, func(v bool) { local = v },
		func(ctx context.Context, desired bool) error {
			assert.True(t, desired)
			return nil
		})

	assert.True(t, local)
	assert.Empty(t, center.Active())
}

func TestController_ToggleRollbackOnFailure(t *testing.T) {
	c, center, _ := newTestController(NewQuery())

	local := true
	var applied []bool
	c.Toggle(context.Background(), local, func(v bool) {
		applied = append(applied, v)
		local = v
	}, func(ctx context.Context, desired bool) error {
		return errors.New("server said no")
	})

	// Optimistic apply then rollback, ending on the pre-toggle value
	require.Equal(t, []bool{false, true}, applied)
	assert.True(t, local)

	// Exactly one failure notification
	active := center.Active()
	require.Len(t, active, 1)
	assert.Equal(t, notify.LevelError, active[0].Level)
}

func TestController_DeleteRequiresConfirmation(t *testing.T) {
	c, center, _ := newTestController(NewQuery())

	called := false
	deleted := c.Delete(context.Background(), "Delete this category?",
		ConfirmerFunc(func(prompt string) bool { return false }),
		func(ctx context.Context) error {
			called = true
			return nil
		})

	assert.False(t, deleted)
	assert.False(t, called, "canceling must perform no mutation")
	assert.Empty(t, center.Active())
}

func TestController_DeleteConfirmed(t *testing.T) {
	c, center, _ := newTestController(NewQuery())

	called := false
	deleted := c.Delete(context.Background(), "Delete this category?",
		ConfirmerFunc(func(prompt string) bool {
			assert.Equal(t, "Delete this category?", prompt)
			return true
		}),
		func(ctx context.Context) error {
			called = true
			return nil
		})

	assert.True(t, deleted)
	assert.True(t, called)
	require.Len(t, center.Active(), 1)
	assert.Equal(t, notify.LevelSuccess, center.Active()[0].Level)
}

func TestController_DeleteFailureIsStickyAndRetryable(t *testing.T) {
	c, center, _ := newTestController(NewQuery())

	attempts := 0
	deleted := c.Delete(context.Background(), "Delete?",
		ConfirmerFunc(func(string) bool { return true }),
		func(ctx context.Context) error {
			attempts++
			if attempts == 1 {
				return errors.New("boom")
			}
			return nil
		})

	assert.False(t, deleted)
	active := center.Active()
	require.Len(t, active, 1)
	assert.Equal(t, notify.LevelError, active[0].Level)
	assert.True(t, active[0].Sticky)

	// Retrying from the notification re-runs the delete without
	// re-asking for confirmation.
	assert.True(t, center.Retry(active[0].ID))
	assert.Equal(t, 2, attempts)
	active = center.Active()
	require.Len(t, active, 1)
	assert.Equal(t, notify.LevelSuccess, active[0].Level)
}
