package cli

import (
	"context"
	"fmt"
)

func (a *App) Stats(ctx context.Context) error {
	u := a.auth.CurrentUser()
	if u == nil {
		printlnFn("Not logged in")
		return nil
	}

	st, err := a.stats.Get(ctx, u.ID)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if st == nil {
		printlnFn("No stats recorded yet")
		return nil
	}

	printlnFn(fmt.Sprintf("Last 7 days: %d logins, %d tasks created (as of %s)",
		st.SevenDayLoginCount, st.SevenDayTodoCreatedCount, st.LastUpdated.Format("2006-01-02 15:04")))
	return nil
}
