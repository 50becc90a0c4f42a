package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/kelseyhightower/envconfig"
)

// PublishConfig konfiguriert den eigenständigen Publish-Lauf: ein bereits
// erzeugtes Briefing wird als datierter Snapshot plus latest.html hochgeladen,
// alte Snapshots werden rotiert.
type PublishConfig struct {
	ReportPath      string `envconfig:"OUTPUT_PATH" default:"research_feed.html"`
	PublishBucket   string `envconfig:"PUBLISH_S3_BUCKET" required:"true"`
	PublishEndpoint string `envconfig:"PUBLISH_S3_URL" required:"true"`
	PublishKey      string `envconfig:"PUBLISH_S3_KEY" required:"true"`
	PublishSecret   string `envconfig:"PUBLISH_S3_SECRET" required:"true"`
	PublishRegion   string `envconfig:"PUBLISH_S3_REGION" default:"eu-central-1"`
	KeepSnapshots   int    `envconfig:"KEEP_SNAPSHOTS" default:"8"`
}

const snapshotPrefix = "briefing-"

func main() {
	log.Println("Starte Publish-Prozess...")

	var cfg PublishConfig
	err := envconfig.Process("", &cfg)
	if err != nil {
		log.Fatalf("Fehler beim Laden der Konfiguration: %v", err)
	}

	// 1. Briefing einlesen
	html, err := os.ReadFile(cfg.ReportPath)
	if err != nil {
		log.Fatalf("Fehler beim Lesen des Briefings: %v", err)
	}

	// 2. S3-Client erstellen
	s3Client, err := createS3Client(cfg)
	if err != nil {
		log.Fatalf("Fehler beim Erstellen des S3-Clients: %v", err)
	}

	// 3. Snapshot und latest.html hochladen
	snapshotKey := fmt.Sprintf("%s%s.html", snapshotPrefix, time.Now().UTC().Format("2006-01-02"))
	for _, key := range []string{snapshotKey, "latest.html"} {
		if err := uploadToS3(s3Client, cfg, key, html); err != nil {
			log.Fatalf("Fehler beim Hochladen nach S3: %v", err)
		}
		log.Printf("Briefing erfolgreich nach s3://%s/%s hochgeladen", cfg.PublishBucket, key)
	}

	// 4. Alte Snapshots rotieren
	if err := rotateSnapshots(s3Client, cfg); err != nil {
		log.Fatalf("Fehler bei der Rotation alter Snapshots: %v", err)
	}

	log.Println("Publish-Prozess erfolgreich abgeschlossen.")
}

func createS3Client(cfg PublishConfig) (*s3.Client, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: cfg.PublishEndpoint,
		}, nil
	})

	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.PublishKey, cfg.PublishSecret, "")),
		config.WithRegion(cfg.PublishRegion),
	)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(awsCfg), nil
}

func uploadToS3(client *s3.Client, cfg PublishConfig, key string, data []byte) error {
	contentType := "text/html; charset=utf-8"
	_, err := client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(cfg.PublishBucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
	})
	return err
}

func rotateSnapshots(client *s3.Client, cfg PublishConfig) error {
	output, err := client.ListObjectsV2(context.TODO(), &s3.ListObjectsV2Input{
		Bucket: aws.String(cfg.PublishBucket),
		Prefix: aws.String(snapshotPrefix),
	})
	if err != nil {
		return err
	}

	var snapshots []string
	for _, obj := range output.Contents {
		if strings.HasPrefix(*obj.Key, snapshotPrefix) {
			snapshots = append(snapshots, *obj.Key)
		}
	}

	if len(snapshots) <= cfg.KeepSnapshots {
		log.Printf("Weniger als %d Snapshots vorhanden, keine Rotation nötig.", cfg.KeepSnapshots)
		return nil
	}

	// Datierte Keys sortieren lexikographisch chronologisch
	sort.Sort(sort.Reverse(sort.StringSlice(snapshots)))

	for _, key := range snapshots[cfg.KeepSnapshots:] {
		_, err := client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
			Bucket: aws.String(cfg.PublishBucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return err
		}
		log.Printf("Alter Snapshot gelöscht: %s", key)
	}

	return nil
}
