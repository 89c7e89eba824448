package cms

import "testing"

func TestContactReturnsACopy(t *testing.T) {
	info := Contact()
	if len(info.Channels) == 0 {
		t.Fatal("expected seeded contact channels")
	}
	info.Channels[0].URL = "mutated"
	if Contact().Channels[0].URL == "mutated" {
		t.Fatal("contact channels must not be shared with callers")
	}
}

func TestVideosReturnsACopy(t *testing.T) {
	list := Videos()
	if len(list) == 0 {
		t.Fatal("expected seeded videos")
	}
	list[0].VideoID = "mutated"
	if Videos()[0].VideoID == "mutated" {
		t.Fatal("video list must not be shared with callers")
	}
}
