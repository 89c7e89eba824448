package cms

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modegarage/website/internal/platform/icons"
	"github.com/modegarage/website/internal/storage"
)

// memStore is an in-memory storage.Store for exercising the repositories.
type memStore struct {
	entries  map[string][]byte
	failSave bool
}

func newMemStore() *memStore {
	return &memStore{entries: map[string][]byte{}}
}

func (m *memStore) Load(_ context.Context, key string, out any) error {
	payload, ok := m.entries[key]
	if !ok {
		return storage.ErrNotFound
	}
	return json.Unmarshal(payload, out)
}

func (m *memStore) Save(_ context.Context, key string, value any) error {
	if m.failSave {
		return errors.New("quota exceeded")
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = payload
	return nil
}

func newTestStore(t *testing.T) (*Store, *memStore) {
	t.Helper()
	db := newMemStore()
	store, err := NewStore(context.Background(), db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store, db
}

func TestNewStoreSeedsOnEmptyDB(t *testing.T) {
	store, _ := newTestStore(t)

	content, err := store.Content(LanguageKorean)
	if err != nil {
		t.Fatalf("content ko: %v", err)
	}
	if content.Hero.Title == "" {
		t.Fatal("expected seeded hero title")
	}
	if len(content.Services) != 6 {
		t.Fatalf("expected 6 seeded services, got %d", len(content.Services))
	}
	if got := len(store.Posts()); got != 2 {
		t.Fatalf("expected 2 seeded posts, got %d", got)
	}
	if store.Settings().PrimaryColor != "#ff0000" {
		t.Fatalf("unexpected seeded primary color %q", store.Settings().PrimaryColor)
	}
}

func TestNewStoreSeedsOnCorruptEntry(t *testing.T) {
	db := newMemStore()
	db.entries[storage.KeyPosts] = []byte("{not json")

	store, err := NewStore(context.Background(), db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if got := len(store.Posts()); got != 2 {
		t.Fatalf("expected seed posts after corrupt entry, got %d", got)
	}
}

func TestContentUnknownLanguage(t *testing.T) {
	store, _ := newTestStore(t)

	if _, err := store.Content(Language("fr")); !errors.Is(err, ErrUnknownLanguage) {
		t.Fatalf("expected unknown language error, got %v", err)
	}
}

func TestUpdateContentFieldIsolatesLanguages(t *testing.T) {
	store, _ := newTestStore(t)
	before, err := store.Content(LanguageEnglish)
	if err != nil {
		t.Fatalf("content en: %v", err)
	}

	if err := store.UpdateContentField(context.Background(), LanguageKorean, FieldHeroTitle, "새 타이틀"); err != nil {
		t.Fatalf("update field: %v", err)
	}

	ko, err := store.Content(LanguageKorean)
	if err != nil {
		t.Fatalf("content ko: %v", err)
	}
	if ko.Hero.Title != "새 타이틀" {
		t.Fatalf("hero title = %q, want %q", ko.Hero.Title, "새 타이틀")
	}
	if ko.Hero.Subtitle == "" || ko.About.Title == "" {
		t.Fatal("expected untouched sibling fields to survive")
	}
	if len(ko.Services) != 6 {
		t.Fatalf("expected services sequence preserved, got %d entries", len(ko.Services))
	}

	after, err := store.Content(LanguageEnglish)
	if err != nil {
		t.Fatalf("content en: %v", err)
	}
	for _, field := range ContentFields() {
		want, _ := before.Field(field)
		got, _ := after.Field(field)
		if got != want {
			t.Fatalf("english %s changed: got %q, want %q", field, got, want)
		}
	}
}

func TestUpdateContentFieldUnknownField(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.UpdateContentField(context.Background(), LanguageKorean, ContentField("hero.bogus"), "x")
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected unknown field error, got %v", err)
	}
}

func TestUpdateServiceReplacesInPlace(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.UpdateService(context.Background(), LanguageEnglish, Service{
		ID:          "4",
		Title:       "Stage 2 Tuning",
		Description: "More power, safely.",
		Icon:        "Zap",
	})
	if err != nil {
		t.Fatalf("update service: %v", err)
	}

	content, err := store.Content(LanguageEnglish)
	if err != nil {
		t.Fatalf("content en: %v", err)
	}
	if content.Services[3].Title != "Stage 2 Tuning" {
		t.Fatalf("service title = %q, want %q", content.Services[3].Title, "Stage 2 Tuning")
	}
	if len(content.Services) != 6 {
		t.Fatalf("expected 6 services, got %d", len(content.Services))
	}

	ko, err := store.Content(LanguageKorean)
	if err != nil {
		t.Fatalf("content ko: %v", err)
	}
	if ko.Services[3].Title == "Stage 2 Tuning" {
		t.Fatal("korean services must not change")
	}
}

func TestUpdateServiceNormalizesUnknownIcon(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.UpdateService(context.Background(), LanguageEnglish, Service{
		ID:    "4",
		Title: "Stage 2 Tuning",
		Icon:  "Hovercraft",
	})
	if err != nil {
		t.Fatalf("update service: %v", err)
	}

	content, err := store.Content(LanguageEnglish)
	if err != nil {
		t.Fatalf("content en: %v", err)
	}
	if content.Services[3].Icon != icons.DefaultID {
		t.Fatalf("icon = %q, want %q", content.Services[3].Icon, icons.DefaultID)
	}
}

func TestUpdateServiceUnknownID(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.UpdateService(context.Background(), LanguageEnglish, Service{ID: "99"})
	if !errors.Is(err, ErrUnknownService) {
		t.Fatalf("expected unknown service error, got %v", err)
	}
}

func TestUpsertPostAssignsFreshID(t *testing.T) {
	store, _ := newTestStore(t)

	stored, err := store.UpsertPost(context.Background(), BlogPost{
		Title:       "T",
		Content:     "C",
		SEOKeywords: []string{"Automotive", "Garage", "Luxury"},
	})
	if err != nil {
		t.Fatalf("upsert post: %v", err)
	}
	if stored.ID == "" {
		t.Fatal("expected assigned id")
	}
	if stored.ID == "1" || stored.ID == "2" {
		t.Fatalf("assigned id %q collides with existing ids", stored.ID)
	}
	if len(stored.SEOKeywords) == 0 {
		t.Fatal("expected keywords on stored post")
	}

	posts := store.Posts()
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	if posts[2].ID != stored.ID {
		t.Fatalf("expected new post appended at the end, got %q", posts[2].ID)
	}
}

func TestUpsertPostReplacesExistingInPlace(t *testing.T) {
	store, _ := newTestStore(t)

	stored, err := store.UpsertPost(context.Background(), BlogPost{ID: "1", Title: "Updated"})
	if err != nil {
		t.Fatalf("upsert post: %v", err)
	}
	if stored.ID != "1" {
		t.Fatalf("id changed to %q on update", stored.ID)
	}

	posts := store.Posts()
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].ID != "1" || posts[0].Title != "Updated" {
		t.Fatalf("expected position preserved with new title, got %+v", posts[0])
	}
	if posts[1].ID != "2" {
		t.Fatalf("expected second post untouched, got %q", posts[1].ID)
	}
}

func TestUpsertPostUnknownIDAppends(t *testing.T) {
	store, _ := newTestStore(t)

	// An id no longer in the set (deleted in the same session, say) is not
	// resurrected under the caller's id; it gets a fresh identity.
	stored, err := store.UpsertPost(context.Background(), BlogPost{ID: "gone", Title: "T"})
	if err != nil {
		t.Fatalf("upsert post: %v", err)
	}
	if stored.ID == "gone" {
		t.Fatal("expected fresh id for unknown candidate id")
	}
	if len(store.Posts()) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(store.Posts()))
	}
}

func TestDeletePost(t *testing.T) {
	store, _ := newTestStore(t)

	store.DeletePost(context.Background(), "1")

	posts := store.Posts()
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}
	if posts[0].ID != "2" {
		t.Fatalf("expected post 2 to remain, got %q", posts[0].ID)
	}
}

func TestDeletePostAbsentIsNoop(t *testing.T) {
	store, _ := newTestStore(t)

	store.DeletePost(context.Background(), "missing")

	posts := store.Posts()
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].ID != "1" || posts[1].ID != "2" {
		t.Fatal("expected order and contents unchanged")
	}
}

func TestUpdateSettingsPartial(t *testing.T) {
	store, _ := newTestStore(t)
	before := store.Settings()

	color := "#00ff00"
	store.UpdateSettings(context.Background(), SettingsPatch{PrimaryColor: &color})

	after := store.Settings()
	if after.PrimaryColor != "#00ff00" {
		t.Fatalf("primary color = %q, want %q", after.PrimaryColor, "#00ff00")
	}
	if after.AccentColor != before.AccentColor || after.FontFamily != before.FontFamily {
		t.Fatal("expected untouched fields to survive")
	}
	if after.Socials != before.Socials {
		t.Fatalf("socials changed: %+v", after.Socials)
	}
}

func TestUpdateSettingsSocialsMergeShallow(t *testing.T) {
	store, _ := newTestStore(t)
	before := store.Settings()

	insta := "https://instagram.com/changed"
	store.UpdateSettings(context.Background(), SettingsPatch{
		Socials: &SocialsPatch{Instagram: &insta},
	})

	after := store.Settings()
	if after.Socials.Instagram != insta {
		t.Fatalf("instagram = %q, want %q", after.Socials.Instagram, insta)
	}
	if after.Socials.YouTube != before.Socials.YouTube || after.Socials.Facebook != before.Socials.Facebook {
		t.Fatal("updating one social link must not erase the other two")
	}
}

func TestMutationsSurviveRestart(t *testing.T) {
	db := newMemStore()
	store, err := NewStore(context.Background(), db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.UpdateContentField(context.Background(), LanguageEnglish, FieldHeroCTA, "Call Today"); err != nil {
		t.Fatalf("update field: %v", err)
	}
	stored, err := store.UpsertPost(context.Background(), BlogPost{Title: "New Post", SEOKeywords: []string{"a"}})
	if err != nil {
		t.Fatalf("upsert post: %v", err)
	}
	font := "Pretendard"
	store.UpdateSettings(context.Background(), SettingsPatch{FontFamily: &font})

	// Simulate a process restart on the same durable store.
	reloaded, err := NewStore(context.Background(), db)
	if err != nil {
		t.Fatalf("reload store: %v", err)
	}

	content, err := reloaded.Content(LanguageEnglish)
	if err != nil {
		t.Fatalf("content en: %v", err)
	}
	if content.Hero.CTA != "Call Today" {
		t.Fatalf("hero cta = %q, want %q", content.Hero.CTA, "Call Today")
	}
	posts := reloaded.Posts()
	if len(posts) != 3 || posts[2].ID != stored.ID {
		t.Fatalf("expected persisted post %q, got %+v", stored.ID, posts)
	}
	if reloaded.Settings().FontFamily != "Pretendard" {
		t.Fatalf("font family = %q, want %q", reloaded.Settings().FontFamily, "Pretendard")
	}
}

func TestMutationSurvivesSaveFailure(t *testing.T) {
	db := newMemStore()
	store, err := NewStore(context.Background(), db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	db.failSave = true
	if _, err := store.UpsertPost(context.Background(), BlogPost{Title: "Unsaved"}); err != nil {
		t.Fatalf("upsert post: %v", err)
	}

	// In-memory state stays authoritative even though persistence failed.
	if got := len(store.Posts()); got != 3 {
		t.Fatalf("expected 3 posts in memory, got %d", got)
	}
}

func TestPostsReturnsCopies(t *testing.T) {
	store, _ := newTestStore(t)

	posts := store.Posts()
	posts[0].Title = "mutated"
	posts[0].SEOKeywords[0] = "mutated"

	fresh := store.Posts()
	if fresh[0].Title == "mutated" || fresh[0].SEOKeywords[0] == "mutated" {
		t.Fatal("callers must not be able to mutate stored posts")
	}
}
