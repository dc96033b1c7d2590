package listquery

import (
	"context"

	"github.com/addiskitchen/platform/internal/client/notify"
)

// Navigator receives the merged query when the route changes. In the
// admin console this rewrites the URL, which in turn re-triggers the
// fetch; tests capture the query directly.
type Navigator interface {
	Navigate(query Query)
}

// NavigatorFunc adapts a function to Navigator
type NavigatorFunc func(Query)

func (f NavigatorFunc) Navigate(query Query) { f(query) }

// Confirmer asks the user a blocking yes/no question
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmerFunc adapts a function to Confirmer
type ConfirmerFunc func(string) bool

func (f ConfirmerFunc) Confirm(prompt string) bool { return f(prompt) }

// Controller drives one list page: it owns the query state and routes
// row actions through the notification center.
type Controller struct {
	query     Query
	navigator Navigator
	notify    *notify.Center
}

// NewController creates a controller over an initial query
func NewController(initial Query, navigator Navigator, center *notify.Center) *Controller {
	return &Controller{
		query:     initial,
		navigator: navigator,
		notify:    center,
	}
}

// Query returns the current query state
func (c *Controller) Query() Query {
	return c.query
}

// ChangeRoute merges partial over the current query and navigates.
// Changing one key never drops unrelated keys; empty values remove
// their key.
func (c *Controller) ChangeRoute(partial map[string]string) {
	c.query = c.query.Merge(partial)
	if c.navigator != nil {
		c.navigator.Navigate(c.query)
	}
}

// Toggle flips a row's boolean optimistically: apply locally first,
// call the mutation, and roll back on failure. The failure surfaces as
// exactly one notification; the error is not re-thrown.
// apply receives the value the row should display; mutate performs the
// remote call with the desired value.
func (c *Controller) Toggle(ctx context.Context, current bool, apply func(bool), mutate func(context.Context, bool) error) {
	desired := !current
	apply(desired)

	if err := mutate(ctx, desired); err != nil {
		apply(current)
		c.notify.Error("Update failed: " + err.Error())
	}
}

// Delete asks for confirmation and only then fires the delete call.
// Canceling performs no mutation. A failed delete surfaces as a sticky
// failure whose retry re-runs the remote call (without re-asking).
// Returns true when the delete happened.
func (c *Controller) Delete(ctx context.Context, prompt string, confirm Confirmer, del func(context.Context) error) bool {
	if confirm == nil || !confirm.Confirm(prompt) {
		return false
	}
	if err := del(ctx); err != nil {
		c.notify.Failure("Delete failed: "+err.Error(), func() {
			if err := del(ctx); err != nil {
				c.notify.Error("Delete failed: " + err.Error())
				return
			}
			c.notify.Success("Deleted")
		})
		return false
	}
	c.notify.Success("Deleted")
	return true
}
