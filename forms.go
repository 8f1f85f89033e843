package edusphere

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	forms "google.golang.org/api/forms/v1"
	"google.golang.org/api/option"
)

const formsScope = "https://www.googleapis.com/auth/forms.body"

// FormsService is the boundary to Google Forms. Without OAuth configuration
// or a persisted token it returns mock form records; once authorized it
// creates real quiz forms. Either way, errors never cross this boundary: a
// failed API call degrades to the mock record for that call.
type FormsService struct {
	mu        sync.Mutex
	svc       *forms.Service
	oauthCfg  *oauth2.Config
	tokenFile string
	log       *zap.SugaredLogger
}

// NewFormsService builds the forms adapter. Missing OAuth credentials are
// not an error; the adapter simply starts unauthorized.
func NewFormsService(cfg Config, log *zap.SugaredLogger) *FormsService {
	fs := &FormsService{
		tokenFile: cfg.TokenFile,
		log:       log,
	}
	if cfg.GoogleClientID != "" && cfg.GoogleClientSecret != "" {
		fs.oauthCfg = &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURI,
			Scopes:       []string{formsScope},
			Endpoint:     google.Endpoint,
		}
	}
	if err := fs.tryInitialize(context.Background()); err != nil {
		log.Infow("forms adapter starting unauthorized, using mock mode", "reason", err)
	}
	return fs
}

// tryInitialize builds the Forms client from the persisted token, if any.
// Idempotent and safe under concurrent re-entry.
func (fs *FormsService) tryInitialize(ctx context.Context) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if fs.svc != nil {
		return nil
	}
	if fs.oauthCfg == nil {
		return fmt.Errorf("GOOGLE_CLIENT_ID / GOOGLE_CLIENT_SECRET not configured")
	}

	data, err := os.ReadFile(fs.tokenFile)
	if err != nil {
		return fmt.Errorf("no persisted token: %w", err)
	}
	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return fmt.Errorf("invalid token file: %w", err)
	}

	svc, err := forms.NewService(ctx, option.WithTokenSource(fs.oauthCfg.TokenSource(ctx, &token)))
	if err != nil {
		return fmt.Errorf("failed to create forms client: %w", err)
	}
	fs.svc = svc
	fs.log.Info("Google Forms client initialized")
	return nil
}

// Ready reports whether a usable Forms client is held.
func (fs *FormsService) Ready() bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.svc != nil
}

// AuthorizationURL returns the Google consent URL to start the OAuth flow.
func (fs *FormsService) AuthorizationURL(state string) (string, error) {
	if fs.oauthCfg == nil {
		return "", fmt.Errorf("GOOGLE_CLIENT_ID / GOOGLE_CLIENT_SECRET not configured")
	}
	return fs.oauthCfg.AuthCodeURL(state, oauth2.AccessTypeOffline), nil
}

// Exchange trades the one-time authorization code for a token, persists it,
// and initializes the Forms client.
func (fs *FormsService) Exchange(ctx context.Context, code string) error {
	if fs.oauthCfg == nil {
		return fmt.Errorf("GOOGLE_CLIENT_ID / GOOGLE_CLIENT_SECRET not configured")
	}
	token, err := fs.oauthCfg.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("token exchange failed: %w", err)
	}
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	if err := os.WriteFile(fs.tokenFile, data, 0600); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}

	fs.mu.Lock()
	fs.svc = nil
	fs.mu.Unlock()
	return fs.tryInitialize(ctx)
}

// CreateQuizForm creates a Google Form quiz with one radio question per
// Question. Unauthorized or on API failure it returns a mock record instead.
func (fs *FormsService) CreateQuizForm(ctx context.Context, title string, questions []Question) FormInfo {
	fs.mu.Lock()
	svc := fs.svc
	fs.mu.Unlock()

	if svc == nil {
		return mockFormInfo(title, len(questions))
	}

	info, err := fs.createRealForm(ctx, svc, title, questions)
	if err != nil {
		fs.log.Warnw("forms API call failed, returning mock form", "error", err)
		return mockFormInfo(title, len(questions))
	}
	return info
}

func (fs *FormsService) createRealForm(ctx context.Context, svc *forms.Service, title string, questions []Question) (FormInfo, error) {
	created, err := svc.Forms.Create(&forms.Form{
		Info: &forms.Info{DocumentTitle: title},
	}).Context(ctx).Do()
	if err != nil {
		return FormInfo{}, fmt.Errorf("form create failed: %w", err)
	}

	// The create call only accepts a document title; the visible title,
	// quiz mode, and the questions all go through one batch update.
	requests := []*forms.Request{
		{
			UpdateFormInfo: &forms.UpdateFormInfoRequest{
				Info:       &forms.Info{Title: title},
				UpdateMask: "title",
			},
		},
		{
			UpdateSettings: &forms.UpdateSettingsRequest{
				Settings:   &forms.FormSettings{QuizSettings: &forms.QuizSettings{IsQuiz: true}},
				UpdateMask: "quizSettings.isQuiz",
			},
		},
	}
	for i, q := range questions {
		options := make([]*forms.Option, 0, len(q.Options))
		for _, opt := range q.Options {
			options = append(options, &forms.Option{Value: opt})
		}
		requests = append(requests, &forms.Request{
			CreateItem: &forms.CreateItemRequest{
				Item: &forms.Item{
					Title: q.Question,
					QuestionItem: &forms.QuestionItem{
						Question: &forms.Question{
							Required: true,
							Grading: &forms.Grading{
								PointValue: 1,
								CorrectAnswers: &forms.CorrectAnswers{
									Answers: []*forms.CorrectAnswer{{Value: q.CorrectAnswer}},
								},
							},
							ChoiceQuestion: &forms.ChoiceQuestion{
								Type:    "RADIO",
								Options: options,
							},
						},
					},
				},
				Location: &forms.Location{
					Index:           int64(i),
					ForceSendFields: []string{"Index"},
				},
			},
		})
	}

	if _, err := svc.Forms.BatchUpdate(created.FormId, &forms.BatchUpdateFormRequest{
		Requests: requests,
	}).Context(ctx).Do(); err != nil {
		return FormInfo{}, fmt.Errorf("form batch update failed: %w", err)
	}

	return FormInfo{
		FormID:       created.FormId,
		Title:        title,
		FormURL:      created.ResponderUri,
		EditURL:      "https://docs.google.com/forms/d/" + created.FormId + "/edit",
		NumQuestions: len(questions),
		Status:       "created",
	}, nil
}

func mockFormInfo(title string, numQuestions int) FormInfo {
	h := fnv.New32a()
	h.Write([]byte(title))
	formID := fmt.Sprintf("mock_form_%d", h.Sum32()%10000)

	return FormInfo{
		FormID:       formID,
		Title:        title,
		FormURL:      fmt.Sprintf("https://docs.google.com/forms/d/%s/viewform", formID),
		EditURL:      fmt.Sprintf("https://docs.google.com/forms/d/%s/edit", formID),
		NumQuestions: numQuestions,
		Status:       "created",
	}
}
