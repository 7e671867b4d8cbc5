package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"dentrack/internal/config"
	"dentrack/internal/server"
	"dentrack/internal/util"
)

var (
	port    = flag.Int("port", 0, "서비스 포트 (config.toml 보다 우선)")
	devMode = flag.Bool("dev", false, "개발 모드")
	dataDir = flag.String("dataDir", "", "데이터 디렉터리 (설정 파일 덮어쓰기)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  DenTrack - 치과 재료 사용량 관리 도구")
	fmt.Println("==========================================")

	// 설정 로드
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("설정 로드 실패, 기본 설정 사용: %v", err)
		cfg = config.DefaultConfig()
	}

	// 명령행 인자 우선
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	// 데이터 디렉터리 준비
	dir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Printf("데이터 디렉터리 생성 실패: %v", err)
	} else {
		fmt.Printf("데이터 디렉터리: %s\n", dir)
	}

	srv := server.NewServer(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		fmt.Printf("서비스 시작, 포트 %d 대기 중...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("서비스 시작 실패: %v", err)
		}
	}()

	// 브라우저 열기
	if !cfg.Server.DevMode {
		fmt.Printf("브라우저 여는 중: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("자동으로 열지 못했습니다. 직접 접속하세요: %s\n", url)
		}
	} else {
		fmt.Printf("개발 모드: %s 로 접속하세요\n", url)
	}

	fmt.Println("\n종료하려면 Ctrl+C 를 누르세요...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n서비스 종료 중...")
	if err := srv.Close(); err != nil {
		log.Printf("종료 중 정리 실패: %v", err)
	}
}
