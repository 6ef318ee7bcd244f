package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hr-pipeline-backend/config"
	s3client "hr-pipeline-backend/s3"
)

// Provider хранит артефакты конвейера в S3,
// в карточках сущностей остаётся только путь к объекту.
// Резюме и аудио брифинга грузятся до создания карточки,
// поэтому имя объекта - новый uuid, а не id сущности.
type Provider interface {
	UploadResume(ctx context.Context, roleID string, file []byte, fileName string) (objectPath string, err error)
	UploadInterviewAudio(ctx context.Context, roleID, candidateID string, file []byte, fileName string) (objectPath string, err error)
	UploadBriefingAudio(ctx context.Context, file []byte, fileName string) (objectPath string, err error)
	GetFile(ctx context.Context, objectPath string) ([]byte, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

func (i impl) UploadResume(ctx context.Context, roleID string, file []byte, fileName string) (string, error) {
	objectPath := fmt.Sprintf("roles/%s/resumes/%s%s", roleID, uuid.NewString(), filepath.Ext(fileName))
	return i.upload(ctx, objectPath, file)
}

func (i impl) UploadInterviewAudio(ctx context.Context, roleID, candidateID string, file []byte, fileName string) (string, error) {
	objectPath := fmt.Sprintf("roles/%s/candidates/%s/interview_audio%s", roleID, candidateID, filepath.Ext(fileName))
	return i.upload(ctx, objectPath, file)
}

func (i impl) UploadBriefingAudio(ctx context.Context, file []byte, fileName string) (string, error) {
	objectPath := fmt.Sprintf("hr_briefings/audio/%s%s", uuid.NewString(), filepath.Ext(fileName))
	return i.upload(ctx, objectPath, file)
}

func (i impl) upload(ctx context.Context, objectPath string, file []byte) (string, error) {
	if s3client.Client == nil {
		return "", errors.New("S3 клиент не инициализирован")
	}
	if err := s3client.MakeBucket(ctx); err != nil {
		return "", errors.Wrap(err, "ошибка создания бакета")
	}
	reader := bytes.NewReader(file)
	_, err := s3client.Client.PutObject(ctx, config.Conf.S3.BucketName, objectPath,
		reader, int64(len(file)), minio.PutObjectOptions{})
	if err != nil {
		return "", errors.Wrap(err, "ошибка загрузки файла в S3")
	}
	log.WithField("object_path", objectPath).Info("файл загружен в S3")
	return objectPath, nil
}

func (i impl) GetFile(ctx context.Context, objectPath string) ([]byte, error) {
	if s3client.Client == nil {
		return nil, errors.New("S3 клиент не инициализирован")
	}
	object, err := s3client.Client.GetObject(ctx, config.Conf.S3.BucketName, objectPath, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения файла из S3")
	}
	defer object.Close()
	body, err := io.ReadAll(object)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка чтения файла из S3")
	}
	return body, nil
}
