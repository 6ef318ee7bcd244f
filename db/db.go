package db

import (
	"fmt"

	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hr-pipeline-backend/config"
)

var DB *gorm.DB

func Connect(debugMode bool, migrate bool) (err error) {
	if DB != nil {
		return nil
	}
	db, err := Open(debugMode)
	if err != nil {
		return err
	}
	DB = db
	if migrate {
		if err = AutoMigrateDB(DB); err != nil {
			return err
		}
	}
	log.Info("Сервис успешно подключен к БД")
	return nil
}

// Open открывает подключение с драйвером из конфигурации:
// postgres для серверных стендов, sqlite для единственного файла БД
func Open(debugMode bool) (*gorm.DB, error) {
	cfg := config.Conf.Database
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dbConnString := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Name, cfg.Password)
		dialector = postgres.Open(dbConnString)
	case "sqlite":
		dialector = sqlite.Open(cfg.SqlitePath)
	default:
		return nil, errors.Errorf("неизвестный драйвер БД: %s", cfg.Driver)
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gorm_logrus.New(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "Ошибка подключения к БД")
	}
	if cfg.Driver == "sqlite" {
		// без прагмы sqlite игнорирует внешние ключи и каскадные удаления
		db.Exec("PRAGMA foreign_keys = ON;")
	}
	if debugMode {
		db.Logger = logger.Default.LogMode(logger.Info)
		db = db.Debug()
	}
	return db, nil
}

func PingDB() error {
	db, err := DB.DB()
	if err != nil {
		return err
	}
	if err = db.Ping(); err != nil {
		return err
	}
	return nil
}
