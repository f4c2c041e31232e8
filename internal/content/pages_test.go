package content

import "testing"

func TestLookupPage(t *testing.T) {
	for _, id := range []string{"home", "About", " work ", "contact"} {
		if _, err := LookupPage(id); err != nil {
			t.Errorf("LookupPage(%q): %v", id, err)
		}
	}
	if _, err := LookupPage("blog"); err == nil {
		t.Error("LookupPage(blog) should fail")
	}
}

func TestPageLinksResolve(t *testing.T) {
	for _, p := range Pages() {
		for _, l := range p.Links {
			if _, err := LookupPage(string(l.Target)); err != nil {
				t.Errorf("page %s links to missing page %s", p.ID, l.Target)
			}
		}
	}
}

func TestTagline(t *testing.T) {
	if len(Tagline.Phrases) == 0 {
		t.Fatal("no tagline phrases")
	}
	if Tagline.TypeDelay <= Tagline.DeleteSpeed {
		t.Errorf("typing (%v) should be slower than deleting (%v)", Tagline.TypeDelay, Tagline.DeleteSpeed)
	}
}

func TestContactPageChannels(t *testing.T) {
	p, err := LookupPage("contact")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	want := []string{"email", "linkedin", "location"}
	if len(p.Channels) != len(want) {
		t.Fatalf("channels = %+v, want kinds %v", p.Channels, want)
	}
	for i, kind := range want {
		if p.Channels[i].Kind != kind {
			t.Errorf("channel %d kind = %q, want %q", i, p.Channels[i].Kind, kind)
		}
	}
	if p.Channels[0].Label != "contact@rachidezzahraouy.com" {
		t.Errorf("email = %q", p.Channels[0].Label)
	}
}
