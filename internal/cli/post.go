package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/companion/internal/validation"
)

type PostCmd struct {
	Add  PostAddCmd  `cmd:"" help:"Share an anonymous post on the support wall."`
	List PostListCmd `cmd:"" help:"Show the support wall."`
	Like PostLikeCmd `cmd:"" help:"Toggle your like on a post."`
}

type PostAddCmd struct {
	Content []string `arg:"" help:"Post content."`
}

func (c *PostAddCmd) Run(ctx *Context) error {
	content := strings.Join(c.Content, " ")
	if err := validation.CheckPostContent(content); err != nil {
		return err
	}
	if err := ctx.LoadStore(); err != nil {
		return err
	}

	post := ctx.Store.SubmitPost(content)
	fmt.Printf("Shared anonymously as post #%d\n", post.ID)
	return nil
}

type PostListCmd struct{}

func (c *PostListCmd) Run(ctx *Context) error {
	if err := ctx.LoadStore(); err != nil {
		return err
	}

	posts := ctx.Store.SupportPosts()
	if len(posts) == 0 {
		fmt.Println("No posts yet. Be the first to share support with the community!")
		return nil
	}

	for _, post := range posts {
		liked := " "
		if post.LikedByUser {
			liked = "♥"
		}
		fmt.Printf("#%d [%s %d likes, %d replies] %s\n", post.ID, liked, post.Likes, post.Replies, post.Timestamp)
		fmt.Printf("    %s\n", post.Content)
	}
	return nil
}

type PostLikeCmd struct {
	ID int64 `arg:"" help:"Post ID."`
}

func (c *PostLikeCmd) Run(ctx *Context) error {
	if err := ctx.LoadStore(); err != nil {
		return err
	}

	found := false
	for _, post := range ctx.Store.SupportPosts() {
		if post.ID == c.ID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("post #%d not found", c.ID)
	}

	ctx.Store.ToggleLike(c.ID)
	for _, post := range ctx.Store.SupportPosts() {
		if post.ID == c.ID {
			if post.LikedByUser {
				fmt.Printf("Liked post #%d (%d likes)\n", post.ID, post.Likes)
			} else {
				fmt.Printf("Unliked post #%d (%d likes)\n", post.ID, post.Likes)
			}
		}
	}
	return nil
}
