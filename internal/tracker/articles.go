package tracker

import (
	"context"
	"log"

	"github.com/mrlokans/readtracker/internal/entities"
)

// AddArticle stores a new unread article.
func (s *Service) AddArticle(ctx context.Context, req NewArticle) (*ArticleView, error) {
	req = req.normalized()
	if err := fromValidation(req.Validate()); err != nil {
		return nil, err
	}

	article := &entities.Article{
		Title:  req.Title,
		Author: req.Author,
		Source: req.Source,
		URL:    req.URL,
	}
	if err := s.repos(ctx).articles.Create(article); err != nil {
		return nil, storageErr(err, "add article")
	}

	log.Printf("[TRACKER] Added article %d %q", article.ID, article.Title)
	view := NewArticleView(*article)
	return &view, nil
}

// EditArticle replaces an article's descriptive fields.
func (s *Service) EditArticle(ctx context.Context, id uint, req NewArticle) (*ArticleView, error) {
	req = req.normalized()
	if err := fromValidation(req.Validate()); err != nil {
		return nil, err
	}

	err := s.repos(ctx).articles.Update(id, map[string]any{
		"title":  req.Title,
		"author": req.Author,
		"source": req.Source,
		"url":    req.URL,
	})
	if err != nil {
		return nil, storageErr(asNotFound(err, "article", id), "edit article")
	}
	return s.GetArticleDetails(ctx, id)
}

// DeleteArticle removes an article and its sessions.
func (s *Service) DeleteArticle(ctx context.Context, id uint) error {
	if err := s.repos(ctx).articles.Delete(id); err != nil {
		return storageErr(asNotFound(err, "article", id), "delete article")
	}
	log.Printf("[TRACKER] Deleted article %d", id)
	return nil
}

func (s *Service) getArticle(ctx context.Context, id uint) (*entities.Article, error) {
	article, err := s.repos(ctx).articles.GetByID(id)
	if err != nil {
		return nil, storageErr(asNotFound(err, "article", id), "load article")
	}
	return article, nil
}
