package rdio

import "context"

// ActivityService provides activity streams, heavy rotation, new releases
// and charts.
type ActivityService struct {
	client *Client
}

// ActivityStreamOptions are the optional arguments of GetActivityStream.
type ActivityStreamOptions struct {
	LastID *int         // only return updates older than this id
	Count  *int         // at most MaxActivityCount
	Types  []UpdateType // restrict the update types returned
	Extras []string
}

// GetActivityStream returns the activity events for a user, the user's
// friends, or everyone.
//
// Example:
//
//	stream, err := client.Activity().GetActivityStream(ctx, "s1234", rdio.ScopeFriends,
//	    &rdio.ActivityStreamOptions{Count: rdio.Int(20)})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, u := range stream.Updates {
//	    fmt.Println(rdio.Deref(u.UpdateType), u.Date)
//	}
func (s *ActivityService) GetActivityStream(ctx context.Context, user string, scope Scope, opts *ActivityStreamOptions) (*Activity, error) {
	opts = orDefault(opts)
	if err := validate(
		checkRequired("user", user),
		checkEnum("scope", scope, scopes),
		checkNonNegative("count", opts.Count),
		checkMax("count", opts.Count, MaxActivityCount),
		checkNonNegativeList("types", opts.Types),
	); err != nil {
		return nil, err
	}

	return executeAs[Activity](ctx, s.client, mGetActivityStream,
		StringArg(user),
		StringArg(string(scope)),
		OptInt(opts.LastID),
		OptInt(opts.Count),
		IntListArg(opts.Types),
		ListArg(opts.Extras),
	)
}

// HeavyRotationOptions are the optional arguments of GetHeavyRotation.
type HeavyRotationOptions struct {
	User    string       // user key, empty for site-wide rotation
	Type    RotationType // albums or artists, empty for both
	Friends *bool        // the user's friends' rotation instead of the user's
	Limit   *int
	Start   *int
	Count   *int
	Extras  []string
}

// GetHeavyRotation returns the most popular albums or artists for a user,
// the user's friends, or the whole site. Elements are *Album or *Artist.
func (s *ActivityService) GetHeavyRotation(ctx context.Context, opts *HeavyRotationOptions) ([]Entity, error) {
	opts = orDefault(opts)
	if err := validate(
		checkOptEnum("type", opts.Type, rotations),
		checkNonNegative("limit", opts.Limit),
		checkPage(opts.Start, opts.Count),
	); err != nil {
		return nil, err
	}

	return s.client.executeEntities(ctx, mGetHeavyRotation,
		NonEmpty(opts.User),
		enumArg(opts.Type),
		OptBool(opts.Friends),
		OptInt(opts.Limit),
		OptInt(opts.Start),
		OptInt(opts.Count),
		ListArg(opts.Extras),
	)
}

// NewReleasesOptions are the optional arguments of GetNewReleases.
type NewReleasesOptions struct {
	Time   Timeframe
	Start  *int
	Count  *int
	Extras []string
}

// GetNewReleases returns albums released across a timeframe.
func (s *ActivityService) GetNewReleases(ctx context.Context, opts *NewReleasesOptions) ([]*Album, error) {
	opts = orDefault(opts)
	if err := validate(
		checkOptEnum("time", opts.Time, timeframes),
		checkPage(opts.Start, opts.Count),
	); err != nil {
		return nil, err
	}

	return executeList[*Album](ctx, s.client, mGetNewReleases,
		enumArg(opts.Time),
		OptInt(opts.Start),
		OptInt(opts.Count),
		ListArg(opts.Extras),
	)
}

// GetTopCharts returns the site-wide most popular items of one type.
// typ must be one of ChartTypes(). Elements have the requested shape.
//
// Example:
//
//	albums, err := client.Activity().GetTopCharts(ctx, rdio.TypeAlbum,
//	    &rdio.PageOptions{Start: rdio.Int(0), Count: rdio.Int(20)})
func (s *ActivityService) GetTopCharts(ctx context.Context, typ ObjectType, opts *PageOptions) ([]Entity, error) {
	opts = orDefault(opts)
	if err := validate(
		checkEnum("type", typ, chartTypes),
		opts.check(),
	); err != nil {
		return nil, err
	}

	return s.client.executeEntities(ctx, mGetTopCharts,
		StringArg(string(typ)),
		OptInt(opts.Start),
		OptInt(opts.Count),
		ListArg(opts.Extras),
	)
}
