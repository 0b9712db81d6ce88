package validation

import "testing"

func TestValidMood(t *testing.T) {
	tests := []struct {
		mood string
		want bool
	}{
		{"great", true},
		{"good", true},
		{"okay", true},
		{"down", true},
		{"sad", true},
		{"", false},
		{"Great", false},
		{"ecstatic", false},
		{" okay", false},
	}

	for _, tt := range tests {
		if got := ValidMood(tt.mood); got != tt.want {
			t.Errorf("ValidMood(%q) = %v, want %v", tt.mood, got, tt.want)
		}
	}
}

func TestCheckMood(t *testing.T) {
	if err := CheckMood("good"); err != nil {
		t.Errorf("CheckMood(good) returned error: %v", err)
	}
	if err := CheckMood("thrilled"); err == nil {
		t.Error("CheckMood(thrilled) returned nil, want error")
	}
}

func TestCheckPostContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"normal content", "Today went well.", false},
		{"leading whitespace", "  trimmed fine", false},
		{"empty", "", true},
		{"spaces only", "   ", true},
		{"tabs and newlines", "\t\n  \n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPostContent(tt.content)
			if tt.wantErr && err == nil {
				t.Errorf("CheckPostContent(%q) returned nil, want error", tt.content)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("CheckPostContent(%q) returned error: %v", tt.content, err)
			}
		})
	}
}

func TestCheckActivityID(t *testing.T) {
	if err := CheckActivityID("mindfulness"); err != nil {
		t.Errorf("CheckActivityID(mindfulness) returned error: %v", err)
	}
	if err := CheckActivityID("skydiving"); err == nil {
		t.Error("CheckActivityID(skydiving) returned nil, want error")
	}
}
