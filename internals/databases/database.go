package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	assignmentModel "labrecord_backend/internals/features/assignments/model"
	enrollmentModel "labrecord_backend/internals/features/enrollments/model"
	evaluationModel "labrecord_backend/internals/features/evaluations/model"
	experimentModel "labrecord_backend/internals/features/experiments/model"
	principalModel "labrecord_backend/internals/features/principals/model"
	subjectModel "labrecord_backend/internals/features/subjects/model"
	submissionModel "labrecord_backend/internals/features/submissions/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	// Full DSN + statement_timeout.
	// With PgBouncer (transaction pooling) keep PreferSimpleProtocol=true.
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=labrecord&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		TranslateError: true, // map driver errors (23505 → gorm.ErrDuplicatedKey)
	})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// MigrateAll keeps the schema in sync with the feature models. Uniqueness
// constraints declared on the models are the system's only concurrency
// control, so migration failures are fatal.
func MigrateAll() {
	if err := DB.AutoMigrate(
		&principalModel.PrincipalModel{},
		&subjectModel.SubjectModel{},
		&experimentModel.ExperimentModel{},
		&enrollmentModel.EnrollmentModel{},
		&assignmentModel.AssignmentModel{},
		&submissionModel.SubmissionModel{},
		&evaluationModel.EvaluationModel{},
	); err != nil {
		log.Fatalf("❌ migration failed: %v", err)
	}
	log.Println("✅ Schema migrated.")
}

func WarmUpQueries() {
	// light queries so the pool is filled and ready
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
