package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/rushilcs/data-viewer/sdk/client"
)

const (
	// Change these values to match your environment
	serviceURL = "http://localhost:8080"
)

func main() {
	config := &client.Config{
		BaseURL: serviceURL,
		Timeout: 30 * time.Second,
	}
	c := client.NewClient(config)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	if err := runExample(ctx, c); err != nil {
		log.Fatalf("Error running example: %v", err)
	}
}

func runExample(ctx context.Context, c *client.Client) error {
	fmt.Println("Running publishing SDK example...")

	fmt.Println("\n1. Logging in...")
	user, err := c.Login(ctx, "publisher@example.com", "changeme-password")
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	fmt.Printf("Logged in as %s (%s)\n", user.Email, user.Role)

	fmt.Println("\n2. Creating a draft dataset...")
	dataset, err := c.CreateDataset(ctx, "example-pairs", "Side-by-side image comparisons", []string{"example"})
	if err != nil {
		return fmt.Errorf("create dataset: %w", err)
	}
	fmt.Printf("Created dataset %s\n", dataset.ID)

	fmt.Println("\n3. Allocating upload slots...")
	left := []byte("left-image-bytes")
	right := []byte("right-image-bytes")
	slots, err := c.AllocateAssets(ctx, dataset.ID, []client.AssetSpec{
		{Filename: "left.png", Kind: "image", ContentType: "image/png", ByteSize: int64(len(left))},
		{Filename: "right.png", Kind: "image", ContentType: "image/png", ByteSize: int64(len(right))},
	})
	if err != nil {
		return fmt.Errorf("allocate assets: %w", err)
	}

	fmt.Println("\n4. Uploading bytes...")
	if err := c.UploadAsset(ctx, slots[0].UploadURL, left); err != nil {
		return fmt.Errorf("upload left: %w", err)
	}
	if err := c.UploadAsset(ctx, slots[1].UploadURL, right); err != nil {
		return fmt.Errorf("upload right: %w", err)
	}

	fmt.Println("\n5. Publishing...")
	err = c.Publish(ctx, dataset.ID, []client.ManifestItem{
		{
			Type:  "image_pair_compare",
			Title: "Example pair",
			Payload: map[string]interface{}{
				"left_asset_id":  slots[0].AssetID,
				"right_asset_id": slots[1].AssetID,
				"prompt":         "Which render looks more realistic?",
			},
		},
	})
	if err != nil {
		return fmt.Errorf("publish: %w", err)
	}

	fmt.Println("\n6. Reading items back...")
	page, err := c.ListItems(ctx, dataset.ID, "")
	if err != nil {
		return fmt.Errorf("list items: %w", err)
	}
	for _, item := range page.Items {
		fmt.Printf("  item %s type=%s title=%q\n", item.ID, item.Type, item.Title)
	}

	fmt.Println("\nDone.")
	return nil
}
