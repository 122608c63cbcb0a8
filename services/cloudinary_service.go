package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ProductImageFolder is the Cloudinary folder for product photos.
const ProductImageFolder = "saltnsoul/products"

// ImageUploader stores product images and returns their public URLs.
type ImageUploader interface {
	UploadImages(ctx context.Context, files []*multipart.FileHeader, folder string) ([]string, error)
	DeleteImage(ctx context.Context, publicID string) error
}

type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService(cloudName, apiKey, apiSecret string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryService{cld: cld}, nil
}

// UploadImage uploads a single image and returns its secure URL
func (s *CloudinaryService) UploadImage(ctx context.Context, file multipart.File, publicID, folder string) (string, error) {
	unique := true
	overwrite := false
	params := uploader.UploadParams{
		Folder:         folder,
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	}
	if publicID != "" {
		params.PublicID = publicID
	}

	result, err := s.cld.Upload.Upload(ctx, file, params)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload successful but no URL returned")
	}
	return result.SecureURL, nil
}

// UploadImages uploads every file in order and returns their URLs
func (s *CloudinaryService) UploadImages(ctx context.Context, files []*multipart.FileHeader, folder string) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := s.uploadHeader(ctx, fh, folder)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (s *CloudinaryService) uploadHeader(ctx context.Context, fh *multipart.FileHeader, folder string) (string, error) {
	file, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file %s: %w", fh.Filename, err)
	}
	defer file.Close()

	name := strings.TrimSuffix(filepath.Base(fh.Filename), filepath.Ext(fh.Filename))
	return s.UploadImage(ctx, file, name, folder)
}

// DeleteImage deletes an image by its public ID
func (s *CloudinaryService) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}
