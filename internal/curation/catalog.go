// Package curation holds the curated learning content attached to missing
// skills. The catalog is static; unknown skills get a generic bundle so a gap
// report is never missing resources.
package curation

import (
	"strings"

	"career-os/internal/domain/gap"
)

type Catalog struct{}

func NewCatalog() Catalog {
	return Catalog{}
}

func (Catalog) Lookup(skill string) gap.Curation {
	if c, ok := catalog[strings.ToLower(strings.TrimSpace(skill))]; ok {
		return c
	}
	return genericBundle
}

var genericBundle = gap.Curation{
	LearningResources: []string{
		"Skill overview and fundamentals",
		"Core concepts and best practices",
		"Hands-on tutorials and exercises",
	},
	RecommendedProject: gap.Project{
		Title:       "Capstone Mini Project",
		Description: "Build a small project applying key concepts.",
		Steps: []string{
			"Define requirements",
			"Implement core features",
			"Test and document",
		},
	},
	Checkpoints: []string{
		"Explain core concepts",
		"Build a small working example",
		"Review common pitfalls",
	},
}

var catalog = map[string]gap.Curation{
	"aws": {
		LearningResources: []string{
			"AWS Skill Builder Cloud Essentials",
			"AWS Well-Architected Framework overview",
			"IAM and VPC basics",
		},
		RecommendedProject: gap.Project{
			Title:       "Deploy a Serverless API",
			Description: "Build and deploy a serverless API with Lambda and API Gateway.",
			Steps: []string{
				"Create IAM roles and policies",
				"Build a Lambda function",
				"Expose it with API Gateway",
				"Add logging and monitoring",
			},
		},
		Checkpoints: []string{
			"Explain IAM roles vs policies",
			"Deploy a Lambda function",
			"Secure an API with API keys",
		},
	},
	"docker": {
		LearningResources: []string{
			"Docker getting started guide",
			"Dockerfile and image layers",
			"Container networking basics",
		},
		RecommendedProject: gap.Project{
			Title:       "Containerize a Web Service",
			Description: "Package an HTTP service with Docker and run it locally.",
			Steps: []string{
				"Write a Dockerfile",
				"Build and run the image",
				"Add environment variables",
				"Use docker-compose for local dev",
			},
		},
		Checkpoints: []string{
			"Build a Docker image",
			"Run and expose a container port",
			"Understand volume mounts",
		},
	},
	"api": {
		LearningResources: []string{
			"REST API design principles",
			"HTTP status codes and semantics",
			"API versioning basics",
		},
		RecommendedProject: gap.Project{
			Title:       "Design a CRUD API",
			Description: "Create a CRUD API with clear resource modeling.",
			Steps: []string{
				"Define resource endpoints",
				"Implement validation and errors",
				"Add pagination and filtering",
				"Document with OpenAPI",
			},
		},
		Checkpoints: []string{
			"Map resources to endpoints",
			"Return correct HTTP status codes",
			"Document an endpoint",
		},
	},
	"java": {
		LearningResources: []string{
			"Java language fundamentals",
			"Collections and generics",
			"Spring Boot basics",
		},
		RecommendedProject: gap.Project{
			Title:       "Spring Boot REST Service",
			Description: "Build a REST service using Spring Boot and JPA.",
			Steps: []string{
				"Create a Spring Boot project",
				"Add JPA entities",
				"Implement REST controllers",
				"Add tests with JUnit",
			},
		},
		Checkpoints: []string{
			"Create a REST endpoint",
			"Map entities with JPA",
			"Write a unit test",
		},
	},
	"python": {
		LearningResources: []string{
			"Python core syntax and data structures",
			"Virtual environments and packaging",
			"Type hints and linting basics",
		},
		RecommendedProject: gap.Project{
			Title:       "CLI Data Tool",
			Description: "Build a CLI tool to parse and analyze CSV data.",
			Steps: []string{
				"Parse arguments",
				"Read and transform CSV data",
				"Generate summary output",
				"Add unit tests",
			},
		},
		Checkpoints: []string{
			"Write functions with type hints",
			"Handle file I/O safely",
			"Create a small CLI command",
		},
	},
	"sql": {
		LearningResources: []string{
			"SQL SELECT and JOIN basics",
			"Indexes and query performance",
			"Data modeling fundamentals",
		},
		RecommendedProject: gap.Project{
			Title:       "Analytics Query Pack",
			Description: "Write a set of analytics queries on a sample dataset.",
			Steps: []string{
				"Design tables with relationships",
				"Write JOIN-heavy queries",
				"Add aggregations and windows",
				"Optimize a slow query",
			},
		},
		Checkpoints: []string{
			"Write a JOIN query",
			"Use GROUP BY with HAVING",
			"Explain a query plan",
		},
	},
	"kubernetes": {
		LearningResources: []string{
			"Kubernetes architecture overview",
			"Pods, deployments, and services",
			"ConfigMaps and Secrets",
		},
		RecommendedProject: gap.Project{
			Title:       "Deploy a Web App to Kubernetes",
			Description: "Deploy a containerized app with a service and ingress.",
			Steps: []string{
				"Create deployment and service",
				"Configure environment variables",
				"Set up ingress",
				"Scale and monitor",
			},
		},
		Checkpoints: []string{
			"Create a deployment",
			"Expose a service",
			"Scale replicas",
		},
	},
	"react": {
		LearningResources: []string{
			"React component fundamentals",
			"State and effects",
			"Routing and data fetching",
		},
		RecommendedProject: gap.Project{
			Title:       "Dashboard UI",
			Description: "Build a dashboard with charts and API data.",
			Steps: []string{
				"Set up routes",
				"Build reusable components",
				"Fetch and display data",
				"Add basic tests",
			},
		},
		Checkpoints: []string{
			"Build a component with state",
			"Handle form input",
			"Fetch data with hooks",
		},
	},
}
