package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/letstalk/internal/models"
)

// Profile prints the user's card and stats.
func (a *App) Profile(ctx context.Context) error {
	u, err := a.me(ctx)
	if err != nil {
		return a.fail(err)
	}
	st, err := a.accounts.Stats(ctx, a.session)
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintf(a.out, "%s %s <%s>\n", u.ProfilePic, u.Name, u.Email)
	if u.Bio != "" {
		fmt.Fprintf(a.out, "    %s\n", u.Bio)
	}
	fmt.Fprintf(a.out, "Posts: %d · Friends: %d · Credits: %d\n", st.Posts, st.Friends, st.Credits)
	return nil
}

// Edit changes name, bio and avatar. An empty answer keeps the current value.
func (a *App) Edit(ctx context.Context) error {
	u, err := a.me(ctx)
	if err != nil {
		return a.fail(err)
	}

	name, err := getSimpleText(a.reader, fmt.Sprintf("Name [%s]", u.Name), a.out)
	if err != nil {
		return err
	}
	bio, err := getSimpleText(a.reader, fmt.Sprintf("Bio [%s]", u.Bio), a.out)
	if err != nil {
		return err
	}
	pic, err := getSimpleText(a.reader, fmt.Sprintf("Avatar, one of %s [%s]", strings.Join(models.ProfilePics, " "), u.ProfilePic), a.out)
	if err != nil {
		return err
	}

	updated, err := a.accounts.UpdateProfile(ctx, a.session, orDefault(name, u.Name), orDefault(bio, u.Bio), orDefault(pic, u.ProfilePic))
	if err != nil {
		return a.fail(err)
	}
	a.userName = updated.Name
	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
