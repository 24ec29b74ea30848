package util

import (
	"github.com/denisbrodbeck/machineid"
)

// GetMachineID gets the unique identifier of the current machine
// GetMachineID 获取当前机器的唯一标识
// Falls back to a fixed value when the platform does not expose one
// 平台无法提供时回退到固定值
func GetMachineID() string {
	id, err := machineid.ID()
	if err != nil {
		return "env-share-service"
	}
	return id
}
