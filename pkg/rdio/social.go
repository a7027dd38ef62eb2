package rdio

import "context"

// SocialService provides friends, followers and user lookup.
type SocialService struct {
	client *Client
}

// AddFriend follows a user.
func (s *SocialService) AddFriend(ctx context.Context, user string) (bool, error) {
	return s.userAction(ctx, mAddFriend, user)
}

// ApproveFollower lets a user follow the authenticated user.
func (s *SocialService) ApproveFollower(ctx context.Context, user string) (bool, error) {
	return s.userAction(ctx, mApproveFollower, user)
}

// HideFollower hides a follower from the authenticated user's profile.
func (s *SocialService) HideFollower(ctx context.Context, user string) (bool, error) {
	return s.userAction(ctx, mHideFollower, user)
}

// RemoveFriend stops following a user.
func (s *SocialService) RemoveFriend(ctx context.Context, user string) (bool, error) {
	return s.userAction(ctx, mRemoveFriend, user)
}

// UnapproveFollower withdraws a follower's approval.
func (s *SocialService) UnapproveFollower(ctx context.Context, user string) (bool, error) {
	return s.userAction(ctx, mUnapproveFollower, user)
}

func (s *SocialService) userAction(ctx context.Context, m *method, user string) (bool, error) {
	if err := checkRequired("user", user); err != nil {
		return false, err
	}
	return s.client.executeBool(ctx, m, StringArg(user))
}

// CurrentUser returns the authenticated user.
func (s *SocialService) CurrentUser(ctx context.Context, extras []string) (*User, error) {
	return executeOne[*User](ctx, s.client, mCurrentUser, ListArg(extras))
}

// FindUserOptions select the user to look up. Exactly one of Email and
// VanityName must be set.
type FindUserOptions struct {
	Email      string
	VanityName string
	Extras     []string
}

// FindUser looks a user up by email address or vanity name.
func (s *SocialService) FindUser(ctx context.Context, opts FindUserOptions) (*User, error) {
	if (opts.Email == "") == (opts.VanityName == "") {
		return nil, &InvalidArgumentError{
			Param: "email",
			Value: opts.Email,
			Bound: "set exactly one of email and vanityName",
		}
	}

	return executeOne[*User](ctx, s.client, mFindUser,
		NonEmpty(opts.Email),
		NonEmpty(opts.VanityName),
		ListArg(opts.Extras),
	)
}

// FollowOptions are the optional arguments of UserFollowers and UserFollowing.
type FollowOptions struct {
	Start    *int
	Count    *int
	Extras   []string
	InCommon *bool // only users the authenticated user also follows
}

// UserFollowers returns the users following user.
func (s *SocialService) UserFollowers(ctx context.Context, user string, opts *FollowOptions) ([]*User, error) {
	return s.follows(ctx, mUserFollowers, user, opts)
}

// UserFollowing returns the users user follows.
func (s *SocialService) UserFollowing(ctx context.Context, user string, opts *FollowOptions) ([]*User, error) {
	return s.follows(ctx, mUserFollowing, user, opts)
}

func (s *SocialService) follows(ctx context.Context, m *method, user string, opts *FollowOptions) ([]*User, error) {
	opts = orDefault(opts)
	if err := validate(
		checkRequired("user", user),
		checkPage(opts.Start, opts.Count),
	); err != nil {
		return nil, err
	}

	return executeList[*User](ctx, s.client, m,
		StringArg(user),
		OptInt(opts.Start),
		OptInt(opts.Count),
		ListArg(opts.Extras),
		OptBool(opts.InCommon),
	)
}

// UserHiddenFollowers returns the followers user has hidden.
func (s *SocialService) UserHiddenFollowers(ctx context.Context, user string, opts *PageOptions) ([]*User, error) {
	return s.pagedUsers(ctx, mUserHiddenFollowers, user, opts)
}

// UserPendingFollowers returns the followers awaiting user's approval.
func (s *SocialService) UserPendingFollowers(ctx context.Context, user string, opts *PageOptions) ([]*User, error) {
	return s.pagedUsers(ctx, mUserPendingFollowers, user, opts)
}

func (s *SocialService) pagedUsers(ctx context.Context, m *method, user string, opts *PageOptions) ([]*User, error) {
	opts = orDefault(opts)
	if err := validate(
		checkRequired("user", user),
		opts.check(),
	); err != nil {
		return nil, err
	}

	return executeList[*User](ctx, s.client, m,
		StringArg(user),
		OptInt(opts.Start),
		OptInt(opts.Count),
		ListArg(opts.Extras),
	)
}
