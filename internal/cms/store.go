package cms

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/modegarage/website/internal/platform/icons"
	"github.com/modegarage/website/internal/platform/id"
	"github.com/modegarage/website/internal/storage"
)

// Store holds the three editable collections and is their sole mutator.
//
// All operations are safe for concurrent use; a single mutex serializes
// mutations so each operation is atomic. Every mutation flushes all three
// collections back to the durable store. Flush failures are logged and
// swallowed: the in-memory state stays authoritative for the rest of the
// session.
type Store struct {
	mu sync.Mutex
	db storage.Store

	content  map[Language]SiteContent
	posts    []BlogPost
	settings SiteSettings
}

// NewStore builds a Store, loading each collection from the durable store and
// falling back to seed data when an entry is missing or unreadable.
func NewStore(ctx context.Context, db storage.Store) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("durable store is required")
	}

	s := &Store{db: db}

	content := map[Language]SiteContent{}
	if err := db.Load(ctx, storage.KeyContent, &content); err != nil || len(content) == 0 {
		logLoadFallback(storage.KeyContent, err)
		content = SeedContent()
	}
	s.content = content

	var posts []BlogPost
	if err := db.Load(ctx, storage.KeyPosts, &posts); err != nil {
		logLoadFallback(storage.KeyPosts, err)
		posts = SeedPosts()
	}
	s.posts = posts

	var settings SiteSettings
	if err := db.Load(ctx, storage.KeySettings, &settings); err != nil {
		logLoadFallback(storage.KeySettings, err)
		settings = SeedSettings()
	}
	s.settings = settings

	return s, nil
}

// logLoadFallback reports why a collection fell back to seed data. A missing
// entry is a normal first run and stays quiet.
func logLoadFallback(key string, err error) {
	if err == nil || errors.Is(err, storage.ErrNotFound) {
		return
	}
	log.Printf("cms: load %s failed, using seed data: %v", key, err)
}

// Content returns the marketing copy for one language.
func (s *Store) Content(lang Language) (SiteContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, ok := s.content[lang]
	if !ok {
		return SiteContent{}, fmt.Errorf("content for %q: %w", lang, ErrUnknownLanguage)
	}
	return content.clone(), nil
}

// UpdateContentField replaces a single leaf field for one language. Other
// languages, other fields, and the services sequence are untouched.
func (s *Store) UpdateContentField(ctx context.Context, lang Language, field ContentField, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, ok := s.content[lang]
	if !ok {
		return fmt.Errorf("content for %q: %w", lang, ErrUnknownLanguage)
	}
	if err := content.setField(field, value); err != nil {
		return fmt.Errorf("update %s: %w", field, err)
	}
	s.content[lang] = content
	s.flushLocked(ctx)
	return nil
}

// UpdateService replaces one service entry, matched by id, for one language.
// The icon identifier is normalized against the icon catalog on write, so
// stored entries never carry an unknown icon. No current admin surface calls
// this, but the capability is part of the repository contract.
func (s *Store) UpdateService(ctx context.Context, lang Language, svc Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc.Icon = icons.Normalize(svc.Icon)
	content, ok := s.content[lang]
	if !ok {
		return fmt.Errorf("content for %q: %w", lang, ErrUnknownLanguage)
	}
	replaced := false
	services := make([]Service, len(content.Services))
	copy(services, content.Services)
	for i, existing := range services {
		if existing.ID == svc.ID {
			services[i] = svc
			replaced = true
			break
		}
	}
	if !replaced {
		return fmt.Errorf("service %q for %q: %w", svc.ID, lang, ErrUnknownService)
	}
	content.Services = services
	s.content[lang] = content
	s.flushLocked(ctx)
	return nil
}

// Posts returns all posts in storage order.
func (s *Store) Posts() []BlogPost {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]BlogPost, len(s.posts))
	for i, post := range s.posts {
		out[i] = post.clone()
	}
	return out
}

// Post returns one post by id.
func (s *Store) Post(postID string) (BlogPost, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, post := range s.posts {
		if post.ID == postID {
			return post.clone(), true
		}
	}
	return BlogPost{}, false
}

// UpsertPost stores a post. When the candidate's id matches an existing
// entry, that entry is replaced in place; otherwise a fresh id is assigned
// and the post appended. This is the sole creation path. The stored post is
// returned.
func (s *Store) UpsertPost(ctx context.Context, candidate BlogPost) (BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := candidate.clone()
	if stored.ID != "" {
		for i, existing := range s.posts {
			if existing.ID == stored.ID {
				s.posts[i] = stored
				s.flushLocked(ctx)
				return stored.clone(), nil
			}
		}
	}

	stored.ID = s.freshPostIDLocked()
	s.posts = append(s.posts, stored)
	s.flushLocked(ctx)
	return stored.clone(), nil
}

// DeletePost removes the post with the given id. Deleting an absent id is a
// no-op, not an error.
func (s *Store) DeletePost(ctx context.Context, postID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.posts {
		if existing.ID == postID {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			s.flushLocked(ctx)
			return
		}
	}
}

// Settings returns the current settings record.
func (s *Store) Settings() SiteSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// UpdateSettings merges the patch into the settings record. Unset patch
// fields are left untouched.
func (s *Store) UpdateSettings(ctx context.Context, patch SettingsPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.apply(patch)
	s.flushLocked(ctx)
}

// freshPostIDLocked returns an id distinct from every stored post id.
func (s *Store) freshPostIDLocked() string {
	for {
		candidate := id.New()
		taken := false
		for _, existing := range s.posts {
			if existing.ID == candidate {
				taken = true
				break
			}
		}
		if !taken {
			return candidate
		}
	}
}

// flushLocked re-serializes all three collections. There is no dirty
// tracking; the full flush keeps the persistence path trivially correct at
// this scale. Write failures are non-fatal.
func (s *Store) flushLocked(ctx context.Context) {
	if err := s.db.Save(ctx, storage.KeyContent, s.content); err != nil {
		log.Printf("cms: save %s failed: %v", storage.KeyContent, err)
	}
	if err := s.db.Save(ctx, storage.KeyPosts, s.posts); err != nil {
		log.Printf("cms: save %s failed: %v", storage.KeyPosts, err)
	}
	if err := s.db.Save(ctx, storage.KeySettings, s.settings); err != nil {
		log.Printf("cms: save %s failed: %v", storage.KeySettings, err)
	}
}
