package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/letstalk/internal/models"
	"github.com/dmitrijs2005/letstalk/internal/relevance"
)

// Welcome lists the welcome posts new members answer to finish onboarding.
func (a *App) Welcome(ctx context.Context) error {
	u, err := a.me(ctx)
	if err != nil {
		return a.fail(err)
	}
	posts, err := a.ledger.WelcomePosts(ctx)
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintf(a.out, "Response credits: %d\n", u.ResponseCredits)
	a.printPosts(posts, u.ID)
	fmt.Fprintln(a.out, "Answer one with: respond <post id>")
	return nil
}

// Respond asks for a response to postID and submits it.
func (a *App) Respond(ctx context.Context, postID string) error {
	before, err := a.me(ctx)
	if err != nil {
		return a.fail(err)
	}

	text, err := getSimpleText(a.reader, "Your response (at least 3 words)", a.out)
	if err != nil {
		return err
	}

	_, verdict, err := a.ledger.RespondToPost(ctx, a.session, postID, text)
	if err != nil {
		return a.fail(err)
	}

	if verdict.Level == relevance.LevelWarning {
		fmt.Fprintln(a.out, "⚠ "+verdict.Message)
	} else {
		fmt.Fprintln(a.out, verdict.Message)
	}

	after, err := a.me(ctx)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.out, "Response credits: %d\n", after.ResponseCredits)
	if after.HasCompletedWelcome && !before.HasCompletedWelcome {
		fmt.Fprintln(a.out, "You're all set! Type 'help' to see everything you can do.")
	}
	return nil
}

// Unrespond retracts one of the user's recent responses.
func (a *App) Unrespond(ctx context.Context, postID, responseID string) error {
	if err := a.ledger.DeleteResponse(ctx, a.session, postID, responseID); err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, "Response deleted. One response credit was taken back.")
	return nil
}

// Post asks for content and publishes it for one credit.
func (a *App) Post(ctx context.Context) error {
	if _, err := a.member(ctx); err != nil {
		return a.fail(err)
	}
	content, err := GetMultiline(a.reader, "What's on your mind?", a.out)
	if err != nil {
		return err
	}

	p, err := a.ledger.CreatePost(ctx, a.session, content)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.out, "Posted [%s].\n", p.ID)
	return nil
}

// Delete removes one of the user's posts and refunds its credit.
func (a *App) Delete(ctx context.Context, postID string) error {
	if _, err := a.member(ctx); err != nil {
		return a.fail(err)
	}
	if err := a.ledger.DeletePost(ctx, a.session, postID); err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, "Post deleted. Your response credit was refunded.")
	return nil
}

// Feed shows friends' posts.
func (a *App) Feed(ctx context.Context) error {
	u, err := a.member(ctx)
	if err != nil {
		return a.fail(err)
	}
	posts, err := a.ledger.Feed(ctx, a.session)
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintf(a.out, "Response credits: %d\n", u.ResponseCredits)
	if len(posts) == 0 {
		fmt.Fprintln(a.out, "Your feed is empty. Add friends with: addfriend <email>")
		return nil
	}
	a.printPosts(posts, u.ID)
	return nil
}

// Mine shows the user's own posts.
func (a *App) Mine(ctx context.Context) error {
	u, err := a.member(ctx)
	if err != nil {
		return a.fail(err)
	}
	posts, err := a.ledger.ListByAuthor(ctx, u.ID)
	if err != nil {
		return a.fail(err)
	}
	if len(posts) == 0 {
		fmt.Fprintln(a.out, "You have not posted yet.")
		return nil
	}
	a.printPosts(posts, u.ID)
	return nil
}

func (a *App) printPosts(posts []*models.Post, viewerID string) {
	now := a.clock.Now()
	for _, p := range posts {
		printPost(a.out, p, viewerID, now)
		fmt.Fprintln(a.out)
	}
}
