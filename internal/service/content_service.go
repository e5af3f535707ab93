package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"play_learn_spark_backend/internal/model"
	"play_learn_spark_backend/internal/repository"
	"play_learn_spark_backend/internal/util"
	"play_learn_spark_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const catalogCacheKey = "catalog:published"
const catalogCacheTTL = time.Minute

type ContentService struct {
	ContentRepo *repository.ContentRepository
	Storage     *StorageService
	Redis       *redis.Client
}

func NewContentService(contentRepo *repository.ContentRepository, storage *StorageService, rdb *redis.Client) *ContentService {
	return &ContentService{
		ContentRepo: contentRepo,
		Storage:     storage,
		Redis:       rdb,
	}
}

func (s *ContentService) CreateContent(item *model.ContentItem) error {
	if err := s.ContentRepo.Create(item); err != nil {
		return err
	}
	s.invalidateCatalog(context.Background())
	return nil
}

func (s *ContentService) GetContent(id string) (*model.ContentItem, error) {
	item, err := s.ContentRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrContentNotFound
	}
	return item, nil
}

func (s *ContentService) ListContent(category string, page, limit int) ([]model.ContentItem, int64, error) {
	return s.ContentRepo.ListAll(category, page, limit)
}

// PublishedCatalog serves the learner-facing catalog, cached for a minute
// since it changes rarely and every recommendation request reads it.
func (s *ContentService) PublishedCatalog(ctx context.Context) ([]model.ContentItem, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, catalogCacheKey).Result(); err == nil {
			var items []model.ContentItem
			if err := json.Unmarshal([]byte(cached), &items); err == nil {
				return items, nil
			}
		}
	}

	items, err := s.ContentRepo.ListPublished()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(items); err == nil {
			s.Redis.Set(ctx, catalogCacheKey, payload, catalogCacheTTL)
		}
	}
	return items, nil
}

func (s *ContentService) UpdateContent(id string, updates *model.ContentItem) (*model.ContentItem, error) {
	existing, err := s.GetContent(id)
	if err != nil {
		return nil, err
	}

	existing.Title = updates.Title
	existing.Description = updates.Description
	existing.Type = updates.Type
	existing.Category = updates.Category
	existing.Tags = updates.Tags
	existing.Skills = updates.Skills
	existing.Difficulty = updates.Difficulty
	existing.AgeRange = updates.AgeRange
	existing.Duration = updates.Duration
	existing.Points = updates.Points
	existing.Published = updates.Published

	if err := s.ContentRepo.Update(existing); err != nil {
		return nil, err
	}
	s.invalidateCatalog(context.Background())
	return existing, nil
}

func (s *ContentService) DeleteContent(id string) error {
	if _, err := s.GetContent(id); err != nil {
		return err
	}
	if err := s.ContentRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateCatalog(context.Background())
	return nil
}

// AttachMedia stores an uploaded file for a content item. Videos are probed
// so the item's duration and format reflect the real file.
func (s *ContentService) AttachMedia(ctx context.Context, id string, file *multipart.FileHeader) (*model.ContentItem, error) {
	item, err := s.GetContent(id)
	if err != nil {
		return nil, err
	}

	ext := filepath.Ext(file.Filename)
	filename := fmt.Sprintf("content/%s/%s%s", id, uuid.New().String(), ext)

	// Stage the upload locally first so ffprobe can read it.
	tmp, err := os.CreateTemp("", "upload-*"+ext)
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	tmp.Close()

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	out, err := os.OpenFile(tmp.Name(), os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, err
	}
	if _, err := out.ReadFrom(src); err != nil {
		out.Close()
		return nil, err
	}
	out.Close()

	contentType := file.Header.Get("Content-Type")
	if item.Type == model.ContentVideo || strings.HasPrefix(contentType, "video/") {
		if info, err := util.GetVideoInfo(tmp.Name()); err == nil {
			item.Duration = int(math.Ceil(info.Duration / 60))
			if item.Duration < 1 {
				item.Duration = 1
			}
			item.VideoFormat = info.Format
			item.MediaSize = info.Size
		} else {
			logger.Log.Warn("video probe failed", zap.String("content", id), zap.Error(err))
		}
	} else {
		item.MediaSize = file.Size
	}

	url, err := s.Storage.Provider.UploadFile(ctx, filename, tmp.Name(), contentType)
	if err != nil {
		return nil, err
	}
	item.MediaURL = url

	if err := s.ContentRepo.Update(item); err != nil {
		return nil, err
	}
	s.invalidateCatalog(ctx)
	return item, nil
}

func (s *ContentService) invalidateCatalog(ctx context.Context) {
	if s.Redis != nil {
		s.Redis.Del(ctx, catalogCacheKey)
	}
}
