// activityctl 是直连文档库的维护工具，替代原来散落的一次性脚本：
// 查看、种子写入、删除活动，以及按标题修补图片列表。
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/ttguo7/kid-activity-platform/internal/bootstrap"
	"github.com/ttguo7/kid-activity-platform/internal/infra/persistence/mongodb"
	"github.com/ttguo7/kid-activity-platform/internal/service"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	app := &cli.Command{
		Name:  "activityctl",
		Usage: "Maintenance commands for the kid activity store",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Print all activities in the store",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "category", Usage: "filter by exact category"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					svc, err := newService()
					if err != nil {
						return err
					}
					activities, err := svc.List(ctx, cmd.String("category"))
					if err != nil {
						return err
					}
					for i, a := range activities {
						fmt.Printf("%d. %s\n", i+1, a.Title)
						fmt.Printf("   id: %s\n", a.ID)
						fmt.Printf("   date: %s  location: %s\n", a.Date, a.Location)
						fmt.Printf("   category: %s  ageRange: %s  price: %.2f  status: %s\n", a.Category, a.AgeRange, a.Price, a.Status)
						if len(a.Images) > 0 {
							fmt.Printf("   images: %v\n", a.Images)
						}
					}
					fmt.Printf("total: %d\n", len(activities))
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Insert the built-in example activities (idempotent by title)",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					svc, err := newService()
					if err != nil {
						return err
					}
					result, err := svc.SeedExamples(ctx)
					if err != nil {
						return err
					}
					fmt.Printf("added: %d, skipped: %d\n", result.Added, result.Skipped)
					for _, id := range result.IDs {
						fmt.Println("  " + id)
					}
					return nil
				},
			},
			{
				Name:      "remove",
				Usage:     "Hard-delete activities by id",
				ArgsUsage: "<id> [<id>...]",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					ids := cmd.Args().Slice()
					if len(ids) == 0 {
						return fmt.Errorf("at least one activity id is required")
					}
					svc, err := newService()
					if err != nil {
						return err
					}
					for _, id := range ids {
						if err := svc.Delete(ctx, id); err != nil {
							logrus.WithError(err).WithField("activity_id", id).Warn("Delete failed, continuing")
							continue
						}
						fmt.Println("deleted: " + id)
					}
					return nil
				},
			},
			{
				Name:  "set-images",
				Usage: "Replace the image list of an activity, matched by exact title",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Usage: "exact activity title", Required: true},
					&cli.StringSliceFlag{Name: "image", Usage: "image URL, repeatable; order is display order"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					svc, err := newService()
					if err != nil {
						return err
					}
					title := cmd.String("title")
					images := cmd.StringSlice("image")
					if err := svc.SetImages(ctx, title, images); err != nil {
						return err
					}
					fmt.Printf("updated %q with %d image(s)\n", title, len(images))
					return nil
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logrus.Fatal(err)
	}
}

// newService 和服务器共用同一套配置加载，保证脚本和 API 打到同一个库
func newService() (*service.ActivityService, error) {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return nil, err
	}
	repo := mongodb.NewMongoActivityRepository(cfg.MongoURI, cfg.MongoDatabase, cfg.StoreTimeout)
	return service.NewActivityService(repo), nil
}
