package legacy

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document shapes of the MongoDB deployment. Field names follow the stored
// camelCase keys, aliases included.

// Meta holds the keys every stored document carries.
type Meta struct {
	ID        primitive.ObjectID `bson:"_id"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

type profileDoc struct {
	Meta      `bson:",inline"`
	Name      string `bson:"name"`
	Headline  string `bson:"headline"`
	Title     string `bson:"title"`
	Bio       string `bson:"bio"`
	AvatarURL string `bson:"avatarUrl"`
	Avatar    string `bson:"avatar"`
	Social    struct {
		LinkedIn string `bson:"linkedin"`
		GitHub   string `bson:"github"`
		Twitter  string `bson:"twitter"`
		Email    string `bson:"email"`
	} `bson:"social"`
}

type aboutDoc struct {
	Meta       `bson:",inline"`
	Title      string   `bson:"title"`
	Bio        string   `bson:"bio"`
	ImageURL   string   `bson:"imageUrl"`
	Image      string   `bson:"image"`
	WhatIDo    []string `bson:"whatIDo"`
	TechStacks []string `bson:"techStacks"`
	Stats      struct {
		Education string `bson:"education"`
		Projects  string `bson:"projects"`
		CGPA      string `bson:"cgpa"`
	} `bson:"stats"`
}

type skillDoc struct {
	Meta        `bson:",inline"`
	Name        string `bson:"name"`
	Category    string `bson:"category"`
	Level       string `bson:"level"`
	Icon        string `bson:"icon"`
	Description string `bson:"description"`
	IsFeatured  bool   `bson:"isFeatured"`
	Order       int    `bson:"order"`
}

type certificateDoc struct {
	Meta        `bson:",inline"`
	Title       string `bson:"title"`
	Issuer      string `bson:"issuer"`
	Date        string `bson:"date"`
	Image       string `bson:"image"`
	Description string `bson:"description"`
	IsActive    *bool  `bson:"isActive"`
	Order       int    `bson:"order"`
}

type projectDoc struct {
	Meta         `bson:",inline"`
	Title        string   `bson:"title"`
	Description  string   `bson:"description"`
	ImageURL     string   `bson:"imageUrl"`
	Image        string   `bson:"image"`
	LiveURL      string   `bson:"liveUrl"`
	DemoURL      string   `bson:"demoUrl"`
	GithubURL    string   `bson:"githubUrl"`
	Technologies []string `bson:"technologies"`
	Tags         []string `bson:"tags"`
	Featured     bool     `bson:"featured"`
	Icon         string   `bson:"icon"`
	Category     string   `bson:"category"`
}

type contactDoc struct {
	Meta        `bson:",inline"`
	Title       string `bson:"title"`
	Subtitle    string `bson:"subtitle"`
	Description string `bson:"description"`
	Email       string `bson:"email"`
	Phone       string `bson:"phone"`
	Address     string `bson:"address"`
	SocialLinks struct {
		LinkedIn  string `bson:"linkedin"`
		GitHub    string `bson:"github"`
		Twitter   string `bson:"twitter"`
		Instagram string `bson:"instagram"`
		Facebook  string `bson:"facebook"`
	} `bson:"socialLinks"`
	IsActive *bool `bson:"isActive"`
}

type resumeDoc struct {
	Meta          `bson:",inline"`
	Title         string `bson:"title"`
	FileName      string `bson:"fileName"`
	FileURL       string `bson:"fileUrl"`
	FileSize      int64  `bson:"fileSize"`
	MimeType      string `bson:"mimeType"`
	IsActive      bool   `bson:"isActive"`
	DownloadCount int    `bson:"downloadCount"`
}

type messageDoc struct {
	Meta    `bson:",inline"`
	Name    string `bson:"name"`
	Email   string `bson:"email"`
	Message string `bson:"message"`
	IsRead  bool   `bson:"isRead"`
}

type credentialsDoc struct {
	Meta     `bson:",inline"`
	Email    string `bson:"email"`
	Password string `bson:"password"`
	IsActive *bool  `bson:"isActive"`
}
