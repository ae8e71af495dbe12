package main

import (
	"context"
	"log"
	"time"

	shareddomain "portfolio-service/pkg/shared/domain"

	"github.com/golangid/candi/config/database"
	"github.com/golangid/candi/config/env"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func sampleProjects() []interface{} {
	now := time.Now()
	newProject := func(p shareddomain.Project) shareddomain.Project {
		p.ID = primitive.NewObjectID()
		p.Status = "completed"
		p.Featured = true
		p.CreatedAt = now
		p.UpdatedAt = now
		return p
	}

	return []interface{}{
		newProject(shareddomain.Project{
			Title:        "SonicMirror",
			Description:  "AI-Powered Spotify Music Psychology app that provides brutally honest, psychologically deep insights into users' music listening habits using Gemini AI.",
			Technologies: []string{"Next.js 14", "TypeScript", "TailwindCSS", "Spotify API", "Gemini AI", "Framer Motion"},
			GithubURL:    "https://github.com/Kesh3805/SonicMirror.git",
			ImageURL:     "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=500&h=300&fit=crop",
			Category:     "ai-ml",
			Order:        1,
		}),
		newProject(shareddomain.Project{
			Title:        "WoundLog",
			Description:  `"Write it. Feel it. Bleed it. Heal it." A poetic journaling platform with a social "Bleed Wall" where users can anonymously share their emotional wounds.`,
			Technologies: []string{"Next.js 14", "TypeScript", "MongoDB", "JWT Auth", "Framer Motion", "TailwindCSS"},
			GithubURL:    "https://github.com/Kesh3805/WoundLog.git",
			ImageURL:     "https://images.unsplash.com/photo-1455390582262-044cdead277a?w=500&h=300&fit=crop",
			Category:     "fullstack",
			Order:        2,
		}),
		newProject(shareddomain.Project{
			Title:        "QuoteQuest",
			Description:  "A beautifully crafted, modern quote application that transforms the simple act of reading quotes into an elegant, interactive experience.",
			Technologies: []string{"React 19", "TypeScript", "Vite", "Express", "Animations"},
			GithubURL:    "https://github.com/Kesh3805/QuoteQuest.git",
			ImageURL:     "https://images.unsplash.com/photo-1513475382585-d06e58bcb0e0?w=500&h=300&fit=crop",
			Category:     "frontend",
			Order:        3,
		}),
	}
}

func main() {
	env.Load("portfolio-service")
	ctx := context.Background()

	mongoDeps := database.InitMongoDB(ctx)
	defer mongoDeps.Disconnect(ctx)

	coll := mongoDeps.WriteDB().Collection(shareddomain.Project{}.CollectionName())

	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("clear projects: %v", err)
	}

	projects := sampleProjects()
	res, err := coll.InsertMany(ctx, projects)
	if err != nil {
		log.Fatalf("seed projects: %v", err)
	}

	log.Printf("seeded %d projects", len(res.InsertedIDs))
}
