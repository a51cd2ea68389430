package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/letstalk/internal/common"
	"github.com/dmitrijs2005/letstalk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userIDs(us []*models.User) []string {
	out := make([]string, 0, len(us))
	for _, u := range us {
		out = append(out, u.ID)
	}
	return out
}

func TestSendRequest(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	alice := e.signup(t, "Alice", "alice@example.com")
	bob := e.signup(t, "Bob", "bob@example.com")

	fr, err := e.graph.SendRequest(ctx, alice, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, alice.UserID, fr.FromUserID)
	assert.Equal(t, "Alice", fr.FromName)
	assert.Equal(t, bob.UserID, fr.ToUserID)
	assert.Equal(t, models.RequestPending, fr.Status)

	pending, err := e.graph.PendingRequestsFor(ctx, bob.UserID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, fr.ID, pending[0].ID)

	none, err := e.graph.PendingRequestsFor(ctx, alice.UserID)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSendRequest_Failures(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	alice := e.signup(t, "Alice", "alice@example.com")
	bob := e.signup(t, "Bob", "bob@example.com")
	carol := e.signup(t, "Carol", "carol@example.com")
	e.befriend(t, alice, carol)

	_, err := e.graph.SendRequest(ctx, alice, "nobody@example.com")
	require.ErrorIs(t, err, common.ErrRecipientNotFound)

	_, err = e.graph.SendRequest(ctx, alice, "alice@example.com")
	require.ErrorIs(t, err, common.ErrSelfRequest)

	_, err = e.graph.SendRequest(ctx, alice, "carol@example.com")
	require.ErrorIs(t, err, common.ErrAlreadyFriends)

	_, err = e.graph.SendRequest(ctx, nil, "bob@example.com")
	require.ErrorIs(t, err, common.ErrNotLoggedIn)

	_, err = e.graph.SendRequest(ctx, alice, "bob@example.com")
	require.NoError(t, err)
	_, err = e.graph.SendRequest(ctx, alice, "bob@example.com")
	require.ErrorIs(t, err, common.ErrDuplicatePending)

	// the reverse direction is a different pair
	_, err = e.graph.SendRequest(ctx, bob, "alice@example.com")
	require.NoError(t, err)
}

func TestSendRequest_NoDuplicatePairs(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	alice := e.signup(t, "Alice", "alice@example.com")
	emails := []string{"b@example.com", "c@example.com", "d@example.com"}
	for _, em := range emails {
		e.signup(t, em, em)
		_, err := e.graph.SendRequest(ctx, alice, em)
		require.NoError(t, err)
	}

	_, err := e.graph.SendRequest(ctx, alice, "c@example.com")
	require.ErrorIs(t, err, common.ErrDuplicatePending)

	all, err := e.accounts.repomanager.Requests(e.store).List(ctx)
	require.NoError(t, err)
	seen := map[string]bool{}
	for _, fr := range all {
		pair := fr.FromUserID + "->" + fr.ToUserID
		assert.False(t, seen[pair], "duplicate pending pair %s", pair)
		seen[pair] = true
	}
	assert.Len(t, all, 3)
}

func TestAcceptRequest_LinksBothUsers(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	alice := e.signup(t, "Alice", "alice@example.com")
	bob := e.signup(t, "Bob", "bob@example.com")

	fr, err := e.graph.SendRequest(ctx, alice, "bob@example.com")
	require.NoError(t, err)
	require.NoError(t, e.graph.AcceptRequest(ctx, bob, fr.ID))

	assert.True(t, e.user(t, alice).IsFriend(bob.UserID))
	assert.True(t, e.user(t, bob).IsFriend(alice.UserID))

	pending, err := e.graph.PendingRequestsFor(ctx, bob.UserID)
	require.NoError(t, err)
	assert.Empty(t, pending)

	friends, err := e.graph.FriendsOf(ctx, alice.UserID)
	require.NoError(t, err)
	assert.Equal(t, []string{bob.UserID}, userIDs(friends))

	_, err = e.graph.SendRequest(ctx, bob, "alice@example.com")
	require.ErrorIs(t, err, common.ErrAlreadyFriends)
}

func TestAcceptRequest_CrossedRequestsStaySymmetric(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	alice := e.signup(t, "Alice", "alice@example.com")
	bob := e.signup(t, "Bob", "bob@example.com")

	ab, err := e.graph.SendRequest(ctx, alice, "bob@example.com")
	require.NoError(t, err)
	ba, err := e.graph.SendRequest(ctx, bob, "alice@example.com")
	require.NoError(t, err)

	require.NoError(t, e.graph.AcceptRequest(ctx, bob, ab.ID))
	require.NoError(t, e.graph.AcceptRequest(ctx, alice, ba.ID))

	assert.Equal(t, []string{bob.UserID}, e.user(t, alice).Friends)
	assert.Equal(t, []string{alice.UserID}, e.user(t, bob).Friends)
}

func TestAcceptRequest_Failures(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	alice := e.signup(t, "Alice", "alice@example.com")
	e.signup(t, "Bob", "bob@example.com")
	carol := e.signup(t, "Carol", "carol@example.com")

	fr, err := e.graph.SendRequest(ctx, alice, "bob@example.com")
	require.NoError(t, err)

	require.ErrorIs(t, e.graph.AcceptRequest(ctx, carol, fr.ID), common.ErrRequestNotFound)
	require.ErrorIs(t, e.graph.AcceptRequest(ctx, alice, fr.ID), common.ErrRequestNotFound)
	require.ErrorIs(t, e.graph.AcceptRequest(ctx, carol, "missing"), common.ErrRequestNotFound)
	require.ErrorIs(t, e.graph.AcceptRequest(ctx, nil, fr.ID), common.ErrNotLoggedIn)

	assert.Empty(t, e.user(t, carol).Friends)
	assert.Empty(t, e.user(t, alice).Friends)
}

func TestRejectRequest(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	alice := e.signup(t, "Alice", "alice@example.com")
	bob := e.signup(t, "Bob", "bob@example.com")
	carol := e.signup(t, "Carol", "carol@example.com")

	fr, err := e.graph.SendRequest(ctx, alice, "bob@example.com")
	require.NoError(t, err)

	// not addressed to carol: ignored
	require.NoError(t, e.graph.RejectRequest(ctx, carol, fr.ID))
	pending, _ := e.graph.PendingRequestsFor(ctx, bob.UserID)
	require.Len(t, pending, 1)

	require.NoError(t, e.graph.RejectRequest(ctx, bob, fr.ID))
	require.NoError(t, e.graph.RejectRequest(ctx, bob, fr.ID))
	require.NoError(t, e.graph.RejectRequest(ctx, bob, "never-existed"))

	pending, _ = e.graph.PendingRequestsFor(ctx, bob.UserID)
	assert.Empty(t, pending)
	assert.Empty(t, e.user(t, alice).Friends)
	assert.Empty(t, e.user(t, bob).Friends)

	// a rejected request can be sent again
	_, err = e.graph.SendRequest(ctx, alice, "bob@example.com")
	require.NoError(t, err)
}

func TestFriendsOf_UnknownUser(t *testing.T) {
	e := newTestEnv(t)
	friends, err := e.graph.FriendsOf(context.Background(), "ghost")
	require.NoError(t, err)
	assert.NotNil(t, friends)
	assert.Empty(t, friends)
}

func TestIsBusinessError(t *testing.T) {
	assert.True(t, IsBusinessError(common.ErrNoCredits))
	assert.True(t, IsBusinessError(&RelevanceError{}))
	assert.False(t, IsBusinessError(assert.AnError))
}
