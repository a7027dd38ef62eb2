package rdio

import "context"

// PlaybackService provides playback tokens.
type PlaybackService struct {
	client *Client
}

// GetPlaybackToken returns a token that lets a web player on domain play
// music for the authenticated user.
func (s *PlaybackService) GetPlaybackToken(ctx context.Context, domain string) (string, error) {
	if err := checkRequired("domain", domain); err != nil {
		return "", err
	}
	v, err := s.client.execute(ctx, mGetPlaybackToken, StringArg(domain))
	if err != nil {
		return "", err
	}
	return v.(string), nil
}
