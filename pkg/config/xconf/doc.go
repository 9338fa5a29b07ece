// Package xconf 提供配置文件的加载与反序列化，基于 koanf 实现。
//
// xconf 只负责把 YAML/JSON 数据加载为 koanf 实例并反序列化到结构体，
// 默认值与字段校验由调用方在 Unmarshal 之后处理：
//
//	cfg, err := xconf.New("macipr.yaml")
//	if err != nil {
//	    return err
//	}
//	var app AppConfig
//	if err := cfg.Unmarshal("", &app); err != nil {
//	    return err
//	}
//
// # 支持的格式
//
//   - YAML：.yaml, .yml
//   - JSON：.json
//
// # Unmarshal
//
// Unmarshal 使用 mapstructure 进行反序列化，允许弱类型转换
// （例如字符串 "8" 可自动转为 int 8）。
package xconf
