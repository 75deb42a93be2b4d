package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/tythe-barn/time-tracker/backend/internal/config"
	"github.com/tythe-barn/time-tracker/backend/internal/repository"
	"github.com/tythe-barn/time-tracker/backend/internal/seed"
	"github.com/tythe-barn/time-tracker/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var days int
	var file string

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 插入随机经理, 2: 插入随机班次, 3: 从 CSV 导入班次)")
	flag.IntVar(&n, "n", 5, "要插入的经理数量或员工数量")
	flag.IntVar(&days, "days", 14, "随机班次覆盖的天数")
	flag.StringVar(&file, "file", "./internal/seed/data/shifts.example.csv", "要导入的 CSV 文件")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 创建数据库连接池
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("无法创建数据库连接池", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 只是创建数据库连接池对象，并不会立即连接到数据库，因此需要显式地 ping 一下
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("无法连接到数据库", "error", err)
		return
	}

	// 创建 repository
	repo := repository.NewRepository(cfg, dbpool)

	// 执行操作
	switch op {
	case 0:
		slog.Error("未指定操作")
	case 1:
		if n <= 0 {
			slog.Error("请输入合法的经理数量")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				user, err := utils.GenerateRandomManager(cfg.Seed.User.Password, cfg.Email.UserDomain)
				if err != nil {
					slog.Error("无法生成随机经理", slog.String("error", err.Error()))
					continue
				}

				if err := repo.CreateUser(context.Background(), user); err != nil {
					slog.Error("无法插入经理", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("插入经理成功", slog.Int("count", n-cnt))
		}
	case 2:
		if n <= 0 || days <= 0 {
			slog.Error("请输入合法的员工数量和天数")
		} else {
			seed.SeedRandomShifts(repo, n, days)
		}
	case 3:
		seed.SeedShiftsFromCSV(repo, file)
	default:
		slog.Error("指定的操作非法")
	}
}
