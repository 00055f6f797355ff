package controllers

import (
	"context"
	"net/http"
	"strconv"

	"officeweb/internal/delivery/http/helpers"
	"officeweb/internal/delivery/http/middleware"
	"officeweb/internal/domain"
	"officeweb/internal/listing"
)

// PostFormView is the model of the post editor. ID is zero for a new post.
type PostFormView struct {
	ID   int64
	Post *domain.Post
}

func (c *AdminController) Posts(w http.ResponseWriter, r *http.Request) {
	adminList(c, w, r, "admin.posts", "admin_posts", func(sess *domain.AuthSession) listing.Fetcher[domain.PostListItem] {
		return func(ctx context.Context, p domain.PaginationParams) (*domain.PagedResult[domain.PostListItem], error) {
			return c.Backend.ListAllPosts(ctx, sess, p)
		}
	})
}

func (c *AdminController) NewPost(w http.ResponseWriter, r *http.Request) {
	c.renderPostForm(w, r, http.StatusOK, PostFormView{Post: &domain.Post{IsPublic: true}}, nil)
}

func (c *AdminController) EditPost(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(r, "id")
	if !ok {
		notFound(w, r, c.Views, "/admin/posts")
		return
	}
	sess, _ := middleware.SessionFromContext(r.Context())
	post, err := c.Backend.GetPostForEdit(r.Context(), sess, id)
	if err != nil {
		c.fail(w, r, err, "/admin/posts")
		return
	}
	c.renderPostForm(w, r, http.StatusOK, PostFormView{ID: id, Post: post}, nil)
}

func (c *AdminController) CreatePost(w http.ResponseWriter, r *http.Request) {
	c.savePost(w, r, 0)
}

func (c *AdminController) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(r, "id")
	if !ok {
		notFound(w, r, c.Views, "/admin/posts")
		return
	}
	c.savePost(w, r, id)
}

func (c *AdminController) savePost(w http.ResponseWriter, r *http.Request, id int64) {
	in := postInputFromForm(r)
	view := PostFormView{ID: id, Post: domain.PostFromInput(id, in)}
	if errs := in.Validate(); len(errs) > 0 {
		c.renderPostForm(w, r, http.StatusBadRequest, view, errs)
		return
	}

	sess, _ := middleware.SessionFromContext(r.Context())
	var err error
	if id == 0 {
		var post *domain.Post
		post, err = c.Backend.CreatePost(r.Context(), sess, in)
		if err == nil {
			id = post.ID
		}
	} else {
		_, err = c.Backend.UpdatePost(r.Context(), sess, id, in)
	}
	if err != nil {
		if status, _ := helpers.StatusFor(err); status == http.StatusBadRequest {
			c.renderPostForm(w, r, status, view, []string{err.Error()})
			return
		}
		c.fail(w, r, err, "/admin/posts")
		return
	}
	c.Logger.InfoContext(r.Context(), "post saved", "post_id", id, "admin_id", sess.Admin.ID)
	http.Redirect(w, r, "/admin/posts?done=saved", http.StatusSeeOther)
}

func (c *AdminController) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(r, "id")
	if !ok {
		notFound(w, r, c.Views, "/admin/posts")
		return
	}
	sess, _ := middleware.SessionFromContext(r.Context())
	if err := c.Backend.DeletePost(r.Context(), sess, id); err != nil {
		c.fail(w, r, err, "/admin/posts")
		return
	}
	c.Logger.InfoContext(r.Context(), "post deleted", "post_id", id, "admin_id", sess.Admin.ID)
	http.Redirect(w, r, "/admin/posts?done=deleted", http.StatusSeeOther)
}

func (c *AdminController) renderPostForm(w http.ResponseWriter, r *http.Request, status int, view PostFormView, errs []string) {
	title := "admin.new"
	if view.ID != 0 {
		title = "admin.edit"
	}
	page := c.Views.NewPage(r, title)
	if view.ID != 0 {
		page.Title = page.T("admin.edit") + " #" + strconv.FormatInt(view.ID, 10) + " | " + page.T("site.name")
	}
	page.Errors = errs
	page.Data = view
	c.Views.Render(w, r, status, "admin_post_form", page)
}

func postInputFromForm(r *http.Request) domain.PostInput {
	return domain.PostInput{
		TitleKo:      helpers.FormString(r, "title_ko"),
		TitleEn:      helpers.FormOptional(r, "title_en"),
		TitleZh:      helpers.FormOptional(r, "title_zh"),
		ContentKo:    helpers.FormString(r, "content_ko"),
		ContentEn:    helpers.FormOptional(r, "content_en"),
		ContentZh:    helpers.FormOptional(r, "content_zh"),
		ThumbnailURL: helpers.FormOptional(r, "thumbnail_url"),
		IsPublic:     helpers.FormBool(r, "is_public"),
	}
}
