package cli

import (
	"context"
	"fmt"
)

// Friends lists the user's friends.
func (a *App) Friends(ctx context.Context) error {
	u, err := a.member(ctx)
	if err != nil {
		return a.fail(err)
	}
	friends, err := a.graph.FriendsOf(ctx, u.ID)
	if err != nil {
		return a.fail(err)
	}
	if len(friends) == 0 {
		fmt.Fprintln(a.out, "No friends yet. Add one with: addfriend <email>")
		return nil
	}
	for _, f := range friends {
		fmt.Fprintf(a.out, "%s %s <%s>\n", f.ProfilePic, f.Name, f.Email)
	}
	return nil
}

// Requests lists pending requests addressed to the user.
func (a *App) Requests(ctx context.Context) error {
	u, err := a.member(ctx)
	if err != nil {
		return a.fail(err)
	}
	pending, err := a.graph.PendingRequestsFor(ctx, u.ID)
	if err != nil {
		return a.fail(err)
	}
	if len(pending) == 0 {
		fmt.Fprintln(a.out, "No pending friend requests.")
		return nil
	}
	now := a.clock.Now()
	for _, fr := range pending {
		fmt.Fprintf(a.out, "%s %s · %s  [%s]\n", fr.FromPic, fr.FromName, timeAgo(now, fr.Timestamp), fr.ID)
	}
	fmt.Fprintln(a.out, "Answer with: accept <id> or reject <id>")
	return nil
}

// AddFriend sends a friend request to email.
func (a *App) AddFriend(ctx context.Context, email string) error {
	if _, err := a.member(ctx); err != nil {
		return a.fail(err)
	}
	if _, err := a.graph.SendRequest(ctx, a.session, email); err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, "Friend request sent!")
	return nil
}

func (a *App) Accept(ctx context.Context, requestID string) error {
	if _, err := a.member(ctx); err != nil {
		return a.fail(err)
	}
	if err := a.graph.AcceptRequest(ctx, a.session, requestID); err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, "Friend request accepted.")
	return nil
}

func (a *App) Reject(ctx context.Context, requestID string) error {
	if _, err := a.member(ctx); err != nil {
		return a.fail(err)
	}
	if err := a.graph.RejectRequest(ctx, a.session, requestID); err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, "Friend request rejected.")
	return nil
}
