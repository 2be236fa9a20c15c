package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"smart-travel-planner/internal/agent/tools"
	"smart-travel-planner/internal/itinerary"
	"smart-travel-planner/internal/model"
	"smart-travel-planner/internal/planner"
	"smart-travel-planner/internal/session"
)

// PlanTravel runs the planning pipeline. A later stage's failure never
// discards an earlier stage's result.
func (uc *implUseCase) PlanTravel(ctx context.Context, input planner.PlanTravelInput) (planner.PlanResponse, error) {
	start := time.Now()
	ctx, span := otel.Tracer(tracerName).Start(ctx, "planner.PlanTravel")
	defer span.End()

	resp, err := uc.planTravel(ctx, input)
	status := "ok"
	if err != nil {
		status = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	planDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())
	return resp, err
}

func (uc *implUseCase) planTravel(ctx context.Context, input planner.PlanTravelInput) (planner.PlanResponse, error) {
	userID := strings.TrimSpace(input.UserID)
	if err := validateUserID(userID); err != nil {
		return planner.PlanResponse{}, err
	}
	now := uc.now()

	// 1. Session
	rec, err := uc.resolveSession(ctx, userID)
	if err != nil {
		return planner.PlanResponse{}, err
	}

	// 2. Preferences
	prefs := uc.extractor.Extract(input.Request)
	hints := uc.extractor.Request(input.Request, now)

	// 3. Parameters
	destination := firstNonEmpty(hints.ExplicitDestination, prefs.DestinationHint)
	patch := prefs.Patch
	if destination != "" {
		patch.FavoriteDestinations = append(patch.FavoriteDestinations, destination)
	} else if last, ok := rec.LastDestination(); ok {
		destination = last
	} else {
		destination = uc.cfg.DefaultDestination
	}
	profile := uc.updateProfile(ctx, rec, patch)
	resolved := resolveRequest(destination, hints.Duration, hints.Interests, hints.GroupSize, profile)
	resolved.StartDate = hints.StartDate
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("planner.destination", destination))

	// 4. Knowledge
	passages := uc.retrieveKnowledge(ctx, destination)

	// 5. Environment tools
	conditions := uc.currentConditions(ctx, resolved)

	// 6. Structured itinerary
	genReq := itinerary.Request{
		Destination: resolved.Destination,
		Duration:    resolved.Duration,
		Budget:      resolved.Budget,
		Interests:   resolved.Interests,
		GroupSize:   resolved.GroupSize,
		StartDate:   resolved.StartDate,
		Knowledge:   passages,
	}
	if profile.TravelStyle != nil {
		genReq.TravelStyle = string(*profile.TravelStyle)
	}
	analysis, plan := uc.generate(ctx, genReq)

	// 7. Recommendations
	resp := planner.PlanResponse{
		UserID:            userID,
		Timestamp:         now,
		Profile:           profile,
		Request:           resolved,
		Knowledge:         excerpt(passages),
		CurrentConditions: conditions,
		Analysis:          analysis,
		Itinerary:         plan,
		Recommendations:   recommendations(profile, destination),
		NextSteps:         append([]string(nil), NextSteps...),
	}

	// 8. History
	uc.recordConversation(ctx, userID, session.ConversationEntry{
		Request:         input.Request,
		ResponseSummary: summarize(resolved),
		Destination:     destination,
		Timestamp:       now,
	})

	return resp, nil
}

func (uc *implUseCase) resolveSession(ctx context.Context, userID string) (session.Record, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "planner.stage."+stageSession)
	defer span.End()

	rec, err := uc.store.GetOrCreate(ctx, userID)
	if err != nil {
		span.RecordError(err)
		uc.l.Errorf(ctx, "%s: store.GetOrCreate: %v", LogPrefixPlanTravel, err)
		return session.Record{}, fmt.Errorf("%w: %w", planner.ErrSessionUnavailable, err)
	}
	return rec, nil
}

func (uc *implUseCase) updateProfile(ctx context.Context, rec session.Record, patch model.ProfilePatch) model.UserProfile {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "planner.stage."+stageProfile)
	defer span.End()

	profile, err := uc.store.UpdateProfile(ctx, rec.ID, patch)
	if err != nil {
		uc.degraded(ctx, stageProfile, err)
		return rec.Profile.Merge(patch)
	}
	return profile
}

func (uc *implUseCase) retrieveKnowledge(ctx context.Context, destination string) []string {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "planner.stage."+stageKnowledge)
	defer span.End()

	res := uc.knowledge.Retrieve(ctx, destination+knowledgeQuerySuffix, uc.cfg.TopK)
	span.SetAttributes(attribute.String("outcome", res.Kind().String()))
	if res.Degraded() {
		uc.degraded(ctx, stageKnowledge, res.Cause())
	}
	return res.OrElse([]string{})
}

// currentConditions calls weather and currency concurrently. Tool failures are
// already turned into "unavailable" strings by the registry.
func (uc *implUseCase) currentConditions(ctx context.Context, req planner.ResolvedRequest) planner.CurrentConditions {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "planner.stage."+stageTools)
	defer span.End()

	var out planner.CurrentConditions
	var g errgroup.Group
	g.Go(func() error {
		out.Weather = uc.tools.Invoke(ctx, tools.WeatherToolName, req.Destination)
		return nil
	})
	g.Go(func() error {
		out.Currency = uc.tools.Invoke(ctx, tools.CurrencyToolName, req.Budget+" USD to "+req.Destination)
		return nil
	})
	_ = g.Wait()
	return out
}

func (uc *implUseCase) generate(ctx context.Context, req itinerary.Request) (itinerary.DestinationAnalysis, itinerary.Itinerary) {
	actx, aspan := otel.Tracer(tracerName).Start(ctx, "planner.stage."+stageAnalysis)
	ares := uc.generator.Analyze(actx, req)
	aspan.SetAttributes(attribute.String("outcome", ares.Kind().String()))
	aspan.End()
	if ares.Degraded() {
		uc.degraded(ctx, stageAnalysis, ares.Cause())
	}
	analysis := ares.OrElseFunc(func() itinerary.DestinationAnalysis { return itinerary.FallbackAnalysis(req) })

	pctx, pspan := otel.Tracer(tracerName).Start(ctx, "planner.stage."+stageItinerary)
	pres := uc.generator.Plan(pctx, req, analysis)
	pspan.SetAttributes(attribute.String("outcome", pres.Kind().String()))
	pspan.End()
	if pres.Degraded() {
		uc.degraded(ctx, stageItinerary, pres.Cause())
	}
	plan := pres.OrElseFunc(func() itinerary.Itinerary { return itinerary.FallbackItinerary(req, analysis) })

	return analysis, plan
}

func (uc *implUseCase) recordConversation(ctx context.Context, userID string, entry session.ConversationEntry) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "planner.stage."+stageHistory)
	defer span.End()

	if err := uc.store.RecordConversation(ctx, userID, entry); err != nil {
		uc.degraded(ctx, stageHistory, err)
	}
}

// degraded logs a stage that fell back. It is never a request failure.
func (uc *implUseCase) degraded(ctx context.Context, stage string, cause error) {
	degradationsTotal.WithLabelValues(stage).Inc()
	uc.l.Warnf(ctx, "%s: stage %s degraded: %v", LogPrefixPlanTravel, stage, cause)
}

func validateUserID(userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: empty", planner.ErrInvalidUserID)
	}
	if utf8.RuneCountInString(userID) > maxUserIDLen {
		return fmt.Errorf("%w: longer than %d characters", planner.ErrInvalidUserID, maxUserIDLen)
	}
	for _, r := range userID {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: contains control characters", planner.ErrInvalidUserID)
		}
	}
	return nil
}
