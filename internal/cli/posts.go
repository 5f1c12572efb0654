package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KannamTejaswi311/NutriTrack/internal/dto"
	"github.com/KannamTejaswi311/NutriTrack/internal/model"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newPostsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "Browse and interact with community posts",
	}

	cmd.AddCommand(
		newPostsListCmd(opts),
		newPostsCreateCmd(opts),
		newPostsLikeCmd(opts),
		newPostsReplyCmd(opts),
		newPostsCommentCmd(opts),
		newPostsFlagCmd(opts),
	)

	return cmd
}

func newPostsListCmd(opts *rootOptions) *cobra.Command {
	var filter model.PostFilter

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List posts, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			posts, err := opts.client().ListPosts(cmd.Context(), filter)
			if err != nil {
				return fmt.Errorf("error listing posts: %v", err)
			}

			renderPosts(cmd.OutOrStdout(), posts)
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.Type, "type", "", "only posts of this type")
	cmd.Flags().IntVar(&filter.Limit, "limit", 0, "page size")
	cmd.Flags().IntVar(&filter.Offset, "offset", 0, "page offset")

	return cmd
}

func newPostsCreateCmd(opts *rootOptions) *cobra.Command {
	var input dto.CreatePostRequest
	var image, audio string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Share a post",
		RunE: func(cmd *cobra.Command, args []string) error {
			if image != "" {
				input.Image = &image
			}
			if audio != "" {
				input.Audio = &audio
			}

			post, err := opts.client().CreatePost(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("error creating post: %v", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ Created post %s\n", color.New(color.Bold).Sprint(post.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Author, "author", "", "author name")
	cmd.Flags().StringVar(&input.Content, "content", "", "post text")
	cmd.Flags().StringVar(&input.Type, "type", "", "post type (default post)")
	cmd.Flags().StringSliceVar(&input.Tags, "tags", nil, "comma separated tags")
	cmd.Flags().StringVar(&image, "image", "", "image URL")
	cmd.Flags().StringVar(&audio, "audio", "", "audio URL")
	cmd.Flags().BoolVar(&input.IsHealthWorker, "health-worker", false, "mark the author as a health worker")

	return cmd
}

func newPostsLikeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "like <id>",
		Short: "Like a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			post, err := opts.client().LikePost(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("error liking post: %v", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "❤️  %s now has %d likes\n", post.ID, post.Likes)
			return nil
		},
	}
}

func newPostsReplyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reply <id>",
		Short: "Count a reply to a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			post, err := opts.client().ReplyPost(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("error replying to post: %v", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "↩️  %s now has %d replies\n", post.ID, post.Replies)
			return nil
		},
	}
}

func newPostsCommentCmd(opts *rootOptions) *cobra.Command {
	var input dto.CreateCommentRequest

	cmd := &cobra.Command{
		Use:   "comment <id>",
		Short: "Comment on a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			post, err := opts.client().CommentOnPost(cmd.Context(), args[0], input)
			if err != nil {
				return fmt.Errorf("error commenting on post: %v", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "💬 %s now has %d comments\n", post.ID, len(post.Comments))
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Author, "author", "", "comment author")
	cmd.Flags().StringVar(&input.Text, "text", "", "comment text")

	return cmd
}

func newPostsFlagCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "flag <id>",
		Short: "Toggle the flagged state of a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			post, err := opts.client().ToggleFlag(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("error flagging post: %v", err)
			}

			state := "unflagged"
			if post.Flagged {
				state = "flagged"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "🚩 %s is now %s\n", post.ID, state)
			return nil
		},
	}
}

func renderPosts(w io.Writer, posts []model.Post) {
	if len(posts) == 0 {
		fmt.Fprintln(w, "🤷‍♂️ No posts")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Author", "Content", "Tags", "Likes", "Replies", "Created"})

	for _, post := range posts {
		author := post.Author
		if post.IsHealthWorker {
			author = color.New(color.FgHiGreen).Sprint("✚ ") + author
		}
		content := post.Content
		if post.Flagged {
			content = color.New(color.FgHiRed).Sprint("[flagged] ") + content
		}

		table.Append([]string{
			post.ID,
			author,
			content,
			strings.Join(post.Tags, ", "),
			strconv.FormatInt(post.Likes, 10),
			strconv.FormatInt(post.Replies, 10),
			post.CreatedAt.Local().Format("2006-01-02 15:04"),
		})
	}

	table.Render()
}
