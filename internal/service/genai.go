package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/mamasaathi/backend/internal/logger"
	"github.com/mamasaathi/backend/internal/models"
)

// GenerationError wraps any failure of the generation pipeline: missing
// credential, transport error, or a response that does not match the declared
// shape. Workflows render it as a generic "service unavailable" message and
// never propagate it further.
type GenerationError struct {
	Stage string // "config", "request", "decode", "validate"
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed (%s): %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// ErrNoAPIKey is returned without any network call when the service was
// constructed without a credential. Generation features degrade silently.
var ErrNoAPIKey = &GenerationError{Stage: "config", Err: errors.New("no API key configured")}

// Generator produces the four structured content shapes. Workflows depend on
// this interface; tests substitute fakes.
type Generator interface {
	GenerateParentingPlan(ctx context.Context, ageInWeeks int) (*models.ParentingPlan, error)
	GenerateMealPlan(ctx context.Context, preferences, pinCode string, parentAge, babyAgeInWeeks int) (*models.WeeklyMealPlan, error)
	GenerateRecipe(ctx context.Context, mealName string) (*models.Recipe, error)
	GenerateEmotionSupport(ctx context.Context, mood string) (*models.EmotionSupport, error)
}

// schema declares the expected JSON response shape sent with each request.
type schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Items       *schema            `json:"items,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	Properties  map[string]*schema `json:"properties,omitempty"`
}

func stringList(description string) *schema {
	return &schema{
		Type:        "ARRAY",
		Description: description,
		Items:       &schema{Type: "STRING"},
	}
}

func dailyMealsSchema() *schema {
	return &schema{
		Type: "OBJECT",
		Properties: map[string]*schema{
			"breakfast": stringList("An array of 7 breakfast items, one for each day of the week."),
			"lunch":     stringList("An array of 7 lunch items, one for each day of the week."),
			"dinner":    stringList("An array of 7 dinner items, one for each day of the week."),
			"snacks":    stringList("An array of 7 snack items, one for each day of the week."),
		},
	}
}

// GenAIService talks to the Gemini generateContent API.
type GenAIService struct {
	client *resty.Client
	apiKey string
	model  string
	logger *logger.Logger
}

// NewGenAIService builds the client. An empty apiKey is allowed: every
// generation call then fails fast with ErrNoAPIKey.
func NewGenAIService(baseURL, apiKey, model string, log *logger.Logger) *GenAIService {
	return &GenAIService{
		client: resty.New().SetBaseURL(baseURL),
		apiKey: apiKey,
		model:  model,
		logger: log,
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
	Config   genConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type genConfig struct {
	ResponseMIMEType string  `json:"responseMimeType"`
	ResponseSchema   *schema `json:"responseSchema"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// generate sends one prompt with its declared response schema and returns the
// raw JSON text of the first candidate. No retry is attempted; callers that
// need several generations issue them one at a time.
func (s *GenAIService) generate(ctx context.Context, prompt string, respSchema *schema) ([]byte, error) {
	if s.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	body := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		Config: genConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   respSchema,
		},
	}

	var result generateResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("x-goog-api-key", s.apiKey).
		SetBody(body).
		SetResult(&result).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", s.model))
	if err != nil {
		return nil, &GenerationError{Stage: "request", Err: err}
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &GenerationError{
			Stage: "request",
			Err:   fmt.Errorf("status %d: %s", resp.StatusCode(), resp.String()),
		}
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, &GenerationError{Stage: "decode", Err: errors.New("no candidates in response")}
	}

	return []byte(result.Candidates[0].Content.Parts[0].Text), nil
}

// GenerateParentingPlan produces a daily routine for a baby of the given age.
func (s *GenAIService) GenerateParentingPlan(ctx context.Context, ageInWeeks int) (*models.ParentingPlan, error) {
	prompt := fmt.Sprintf(
		"Given a baby is %d weeks old, create a detailed daily routine for a new parent. "+
			"Include sections for 'FeedingRoutine', 'SleepingRoutine', and 'PlaytimeRoutine'. "+
			"The routine should be supportive, gentle, and offer flexibility.", ageInWeeks)

	respSchema := &schema{
		Type: "OBJECT",
		Properties: map[string]*schema{
			"FeedingRoutine":  stringList(""),
			"SleepingRoutine": stringList(""),
			"PlaytimeRoutine": stringList(""),
		},
	}

	text, err := s.generate(ctx, prompt, respSchema)
	if err != nil {
		return nil, s.fail("parenting plan", err)
	}

	var plan models.ParentingPlan
	if err := json.Unmarshal(text, &plan); err != nil {
		return nil, s.fail("parenting plan", &GenerationError{Stage: "decode", Err: err})
	}
	if err := validateParentingPlan(&plan); err != nil {
		return nil, s.fail("parenting plan", err)
	}
	return &plan, nil
}

// GenerateMealPlan produces a 7-day plan for the mother and the child.
func (s *GenAIService) GenerateMealPlan(ctx context.Context, preferences, pinCode string, parentAge, babyAgeInWeeks int) (*models.WeeklyMealPlan, error) {
	prompt := fmt.Sprintf(`Create a 7-day meal plan for a busy new parent and their baby.
- The parent is %d years old. Their plan should be nutritious and support postpartum recovery.
- The baby is %d weeks old. The baby's plan should be age-appropriate (e.g., milk-focused for young infants, introducing solids for older infants). If the baby is too young for solid food, state that for the baby's meals.
- The family's general preferences are: '%s'.
- Suggest meals that incorporate ingredients commonly available in an area with the Indian PIN code '%s'.
- Provide two separate weekly plans: one for the 'mother' and one for the 'child'. For each plan, provide a JSON array of 7 strings for each meal type: 'breakfast', 'lunch', 'dinner', and 'snacks'.`,
		parentAge, babyAgeInWeeks, preferences, pinCode)

	respSchema := &schema{
		Type: "OBJECT",
		Properties: map[string]*schema{
			"mother": dailyMealsSchema(),
			"child":  dailyMealsSchema(),
		},
	}

	text, err := s.generate(ctx, prompt, respSchema)
	if err != nil {
		return nil, s.fail("meal plan", err)
	}

	var plan models.WeeklyMealPlan
	if err := json.Unmarshal(text, &plan); err != nil {
		return nil, s.fail("meal plan", &GenerationError{Stage: "decode", Err: err})
	}
	if err := validateWeeklyMealPlan(&plan); err != nil {
		return nil, s.fail("meal plan", err)
	}
	return &plan, nil
}

// GenerateRecipe produces a recipe for a dish name. The name is free text;
// the recipe search feature feeds arbitrary user input through here.
func (s *GenAIService) GenerateRecipe(ctx context.Context, mealName string) (*models.Recipe, error) {
	prompt := fmt.Sprintf(
		"Provide a simple and quick recipe for '%s'. Include 'Ingredients' and 'Instructions'. "+
			"The recipe name should be '%s'. Also specify if it's 'SuitableFor' (Mom, Baby, or Both) "+
			"and if 'LocalIngredientUsed' is true or false.", mealName, mealName)

	respSchema := &schema{
		Type: "OBJECT",
		Properties: map[string]*schema{
			"RecipeName":          {Type: "STRING"},
			"Ingredients":         stringList(""),
			"Instructions":        stringList(""),
			"SuitableFor":         {Type: "STRING", Enum: []string{models.SuitableForMom, models.SuitableForBaby, models.SuitableForBoth}},
			"LocalIngredientUsed": {Type: "BOOLEAN"},
		},
	}

	text, err := s.generate(ctx, prompt, respSchema)
	if err != nil {
		return nil, s.fail("recipe", err)
	}

	var recipe models.Recipe
	if err := json.Unmarshal(text, &recipe); err != nil {
		return nil, s.fail("recipe", &GenerationError{Stage: "decode", Err: err})
	}
	if err := validateRecipe(&recipe); err != nil {
		return nil, s.fail("recipe", err)
	}
	return &recipe, nil
}

// GenerateEmotionSupport produces supportive content for a mood label.
func (s *GenAIService) GenerateEmotionSupport(ctx context.Context, mood string) (*models.EmotionSupport, error) {
	prompt := fmt.Sprintf(
		"A new parent is feeling '%s'. Provide a JSON object with three properties to support them: "+
			"1. 'Affirmation': A short, positive affirmation. "+
			"2. 'StressReliefExercise': A simple, quick exercise to relieve stress (e.g., a breathing technique). "+
			"3. 'PepTalk': A brief, encouraging pep talk.", mood)

	respSchema := &schema{
		Type: "OBJECT",
		Properties: map[string]*schema{
			"Affirmation":          {Type: "STRING"},
			"StressReliefExercise": {Type: "STRING"},
			"PepTalk":              {Type: "STRING"},
		},
	}

	text, err := s.generate(ctx, prompt, respSchema)
	if err != nil {
		return nil, s.fail("emotion support", err)
	}

	var support models.EmotionSupport
	if err := json.Unmarshal(text, &support); err != nil {
		return nil, s.fail("emotion support", &GenerationError{Stage: "decode", Err: err})
	}
	if err := validateEmotionSupport(&support); err != nil {
		return nil, s.fail("emotion support", err)
	}
	return &support, nil
}

// fail logs a generation failure and normalizes it to a *GenerationError.
// The missing-key case stays quiet: the feature is simply off.
func (s *GenAIService) fail(kind string, err error) error {
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		genErr = &GenerationError{Stage: "request", Err: err}
	}
	if genErr != ErrNoAPIKey {
		s.logger.Error().Err(genErr).Str("kind", kind).Msg("content generation failed")
	}
	return genErr
}
