package content

// Guidelines are the community guidelines shown above the support wall.
// Display text only; nothing enforces them.
var Guidelines = []string{
	"All posts are anonymous to protect your privacy",
	"Be kind, supportive, and respectful to others",
	"Share experiences, coping strategies, and encouragement",
	"AI moderation ensures a safe, supportive environment",
}

// CrisisResources are the immediate-support lines shown below the wall.
var CrisisResources = []string{
	"Crisis Hotline: 988",
	"Text HOME to 741741",
	"Emergency: 911",
}
