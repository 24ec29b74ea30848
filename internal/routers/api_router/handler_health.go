// Package api_router 提供 HTTP API 路由处理器
package api_router

import (
	"os"
	"runtime"
	"time"

	"github.com/haierkeys/env-share-service/internal/app"
	pkgapp "github.com/haierkeys/env-share-service/pkg/app"
	"github.com/haierkeys/env-share-service/pkg/code"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	*Handler
}

// NewHealthHandler 创建健康检查处理器实例
func NewHealthHandler(a *app.App) *HealthHandler {
	return &HealthHandler{Handler: NewHandler(a)}
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status   string  `json:"status"`   // "healthy" 或 "unhealthy"
	Version  string  `json:"version"`  // 服务版本号
	Uptime   float64 `json:"uptime"`   // 运行时间（秒）
	Database string  `json:"database"` // "connected" 或 "error"
}

// SystemInfo 系统信息响应结构
type SystemInfo struct {
	StartTime time.Time   `json:"startTime"` // Start time // 启动时间
	Uptime    float64     `json:"uptime"`    // Uptime (seconds) // 运行时间（秒）
	Runtime   RuntimeInfo `json:"runtime"`   // Go runtime status // Go 运行时状态
	Memory    MemoryInfo  `json:"memory"`    // Memory information // 内存信息
	Host      HostInfo    `json:"host"`      // Host information // 主机信息
	Process   ProcessInfo `json:"process"`   // Process information // 进程信息
	LoadAvg   *LoadInfo   `json:"loadAvg"`   // Load average // 平均负载
}

// RuntimeInfo Go 运行时信息
type RuntimeInfo struct {
	NumGoroutine int    `json:"numGoroutine"` // Goroutine 数量
	MemAlloc     uint64 `json:"memAlloc"`     // 已分配内存（字节）
	MemTotal     uint64 `json:"memTotal"`     // 累计分配内存（字节）
	MemSys       uint64 `json:"memSys"`       // 从系统获取的内存（字节）
	HeapInuse    uint64 `json:"heapInuse"`    // 正在使用的 Span 占用的内存
	NumGC        uint32 `json:"numGc"`        // GC 次数
}

// MemoryInfo memory information
type MemoryInfo struct {
	Total       uint64  `json:"total"`       // 系统总内存
	Available   uint64  `json:"available"`   // 可用内存
	Used        uint64  `json:"used"`        // 已用内存
	UsedPercent float64 `json:"usedPercent"` // 内存使用率
}

// HostInfo host identification information
type HostInfo struct {
	Hostname      string `json:"hostname"`      // 主机名
	OS            string `json:"os"`            // 操作系统
	Platform      string `json:"platform"`      // 平台
	Arch          string `json:"arch"`          // 架构
	KernelVersion string `json:"kernelVersion"` // 内核版本
	Uptime        uint64 `json:"uptime"`        // 系统运行时间
}

// ProcessInfo current process information
type ProcessInfo struct {
	PID           int32   `json:"pid"`           // Process ID
	Name          string  `json:"name"`          // Process Name
	CPUPercent    float64 `json:"cpuPercent"`    // CPU Usage percentage
	MemoryPercent float32 `json:"memoryPercent"` // Memory Usage percentage
}

// LoadInfo system load information
type LoadInfo struct {
	Load1  float64 `json:"load1"`
	Load5  float64 `json:"load5"`
	Load15 float64 `json:"load15"`
}

// Check 健康检查接口
// @Summary 健康检查
// @Description 检查服务健康状态，包括数据库连接
// @Tags 系统
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /api/health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	response := HealthResponse{
		Status:   "healthy",
		Version:  h.App.VersionInfo().Version,
		Uptime:   time.Since(time.Time(h.App.StartTime)).Seconds(),
		Database: "connected",
	}

	// 检查数据库连接
	if err := h.App.DB.Raw("SELECT 1").Error; err != nil {
		response.Status = "unhealthy"
		response.Database = "error"
		pkgapp.NewResponse(c).ToResponse(code.Failed.WithData(response))
		return
	}

	pkgapp.NewResponse(c).ToResponse(code.Success.WithData(response))
}

// GetSystemInfo retrieves system and runtime information
// @Summary Get system and runtime info
// @Description Get system information and Go runtime data
// @Tags System
// @Security UserAuthToken
// @Param token header string true "Auth Token"
// @Produce json
// @Success 200 {object} pkgapp.Res{data=SystemInfo} "Success"
// @Router /api/system [get]
func (h *HealthHandler) GetSystemInfo(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	// Go Runtime
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	// Memory
	vMem, _ := mem.VirtualMemory()

	// Host
	hInfo, _ := host.Info()

	// Load
	loadStat, _ := load.Avg()

	// Process
	p, _ := process.NewProcess(int32(os.Getpid()))
	pName, _ := p.Name()
	pCPU, _ := p.CPUPercent()
	pMem, _ := p.MemoryPercent()

	data := SystemInfo{
		StartTime: time.Time(h.App.StartTime),
		Uptime:    time.Since(time.Time(h.App.StartTime)).Seconds(),
		Runtime: RuntimeInfo{
			NumGoroutine: runtime.NumGoroutine(),
			MemAlloc:     m.Alloc,
			MemTotal:     m.TotalAlloc,
			MemSys:       m.Sys,
			HeapInuse:    m.HeapInuse,
			NumGC:        m.NumGC,
		},
		Memory: MemoryInfo{
			Total:       vMem.Total,
			Available:   vMem.Available,
			Used:        vMem.Used,
			UsedPercent: vMem.UsedPercent,
		},
		Host: HostInfo{
			Hostname:      hInfo.Hostname,
			OS:            hInfo.OS,
			Platform:      hInfo.Platform,
			Arch:          hInfo.KernelArch,
			KernelVersion: hInfo.KernelVersion,
			Uptime:        hInfo.Uptime,
		},
		Process: ProcessInfo{
			PID:           p.Pid,
			Name:          pName,
			CPUPercent:    pCPU,
			MemoryPercent: pMem,
		},
	}
	if loadStat != nil {
		data.LoadAvg = &LoadInfo{
			Load1:  loadStat.Load1,
			Load5:  loadStat.Load5,
			Load15: loadStat.Load15,
		}
	}

	response.ToResponse(code.Success.WithData(data))
}
