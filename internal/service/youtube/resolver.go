package youtube

import (
	"context"
	"fmt"
	"strings"

	ytapi "google.golang.org/api/youtube/v3"

	"ytlens/internal/domain"
	"ytlens/pkg/errors"
	"ytlens/pkg/logger"
)

// resolveStrategy is one method of turning an identifier into a confirmed
// channel record. A nil channel with a nil error means "no items"; the next
// strategy in the chain gets its turn.
type resolveStrategy interface {
	name() string
	tryResolve(ctx context.Context, id domain.ChannelIdentifier) (*ytapi.Channel, error)
}

type byIDStrategy struct{ api DataAPI }

func (s byIDStrategy) name() string { return "channel_id" }

func (s byIDStrategy) tryResolve(ctx context.Context, id domain.ChannelIdentifier) (*ytapi.Channel, error) {
	return s.api.ChannelByID(ctx, id.Value)
}

type byUsernameStrategy struct{ api DataAPI }

func (s byUsernameStrategy) name() string { return "username" }

func (s byUsernameStrategy) tryResolve(ctx context.Context, id domain.ChannelIdentifier) (*ytapi.Channel, error) {
	return s.api.ChannelByUsername(ctx, id.Value)
}

type bySearchStrategy struct{ api DataAPI }

func (s bySearchStrategy) name() string { return "search" }

func (s bySearchStrategy) tryResolve(ctx context.Context, id domain.ChannelIdentifier) (*ytapi.Channel, error) {
	channelID, err := s.api.SearchChannelID(ctx, id.Value)
	if err != nil {
		return nil, err
	}
	if channelID == "" {
		return nil, nil
	}
	return s.api.ChannelByID(ctx, channelID)
}

// Resolver tries resolution strategies in priority order and stops at the
// first one that produces a channel.
type Resolver struct {
	api DataAPI
	log *logger.Logger
}

// NewResolver creates a channel resolver
func NewResolver(api DataAPI, log *logger.Logger) *Resolver {
	return &Resolver{api: api, log: log}
}

// Resolve turns an identifier into a channel record. The direct-ID strategy
// only joins the chain for identifiers carrying the UC prefix. Exhausting
// every strategy yields a not-found error naming the identifier.
func (r *Resolver) Resolve(ctx context.Context, id domain.ChannelIdentifier) (*ytapi.Channel, error) {
	var strategies []resolveStrategy
	if strings.HasPrefix(id.Value, "UC") {
		strategies = append(strategies, byIDStrategy{r.api})
	}
	strategies = append(strategies, byUsernameStrategy{r.api}, bySearchStrategy{r.api})

	for _, strategy := range strategies {
		channel, err := strategy.tryResolve(ctx, id)
		if err != nil {
			return nil, err
		}
		if channel != nil {
			r.log.WithFields(map[string]interface{}{
				"identifier": id.Value,
				"strategy":   strategy.name(),
				"channel_id": channel.Id,
			}).Debug("Channel resolved")
			return channel, nil
		}
	}

	return nil, errors.NewNotFoundError(fmt.Sprintf("Channel not found: %s", id.Value))
}
