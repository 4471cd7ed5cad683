package database

import (
	"encoding/json"
	"fmt"
	"learnsphere_backend/internal/config"
	"learnsphere_backend/internal/model"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.CatalogGoal{},
		&model.QuizQuestion{},
		&model.AssessmentSubmission{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedCatalogGoals(db)
	seedQuizQuestions(db)

	return db, nil
}

// seedCatalogGoals 目录为空时写入默认学习目标
func seedCatalogGoals(db *gorm.DB) {
	var count int64
	db.Model(&model.CatalogGoal{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []model.CatalogGoal{
		{
			Title:       "数学基础强化",
			Description: "面向零基础学习者的数学入门路径，覆盖线性代数与微积分",
			Category:    "math",
			Level:       "beginner",
			Modules: json.RawMessage(`[
				{"title":"线性代数入门","description":"向量、矩阵与线性变换"},
				{"title":"微积分基础","description":"极限、导数与积分"}
			]`),
			Order: 1,
		},
		{
			Title:       "编程零基础入门",
			Description: "从零开始学习Python编程与基本算法思维",
			Category:    "programming",
			Level:       "beginner",
			Modules: json.RawMessage(`[
				{"title":"Python语法","description":"变量、控制流与函数"},
				{"title":"数据结构基础","description":"列表、字典与简单算法"}
			]`),
			CareerOpportunities: json.RawMessage(`[
				{"title":"初级开发工程师","description":"具备基础编码能力的入门岗位"}
			]`),
			Order: 2,
		},
		{
			Title:       "机器学习工程师路径",
			Description: "经典机器学习算法与工程实践",
			Category:    "ml",
			Level:       "intermediate",
			Prerequisites: json.RawMessage(`[
				{"category":"math","skills":[{"name":"linear algebra","level":"intermediate"}]},
				{"category":"programming","skills":[{"name":"python","level":"intermediate"}]}
			]`),
			Modules: json.RawMessage(`[
				{"title":"监督学习","description":"回归、分类与模型评估"},
				{"title":"无监督学习","description":"聚类与降维"}
			]`),
			CareerOpportunities: json.RawMessage(`[
				{"title":"机器学习工程师","description":"模型训练与上线部署"},
				{"title":"数据科学家","description":"数据分析与建模"}
			]`),
			Order: 3,
		},
		{
			Title:       "深度学习进阶",
			Description: "神经网络原理与主流深度学习框架实战",
			Category:    "dl",
			Level:       "advanced",
			Prerequisites: json.RawMessage(`[
				{"category":"math","skills":[{"name":"calculus","level":"intermediate"},{"name":"linear algebra","level":"advanced"}]},
				{"category":"ml basics","skills":[{"name":"supervised learning","level":"intermediate"}]}
			]`),
			Modules: json.RawMessage(`[
				{"title":"神经网络基础","description":"反向传播与优化器"},
				{"title":"卷积与循环网络","description":"CNN/RNN结构与应用"}
			]`),
			Order: 4,
		},
		{
			Title:       "自然语言处理专项",
			Description: "文本表示、预训练模型与对话系统",
			Category:    "nlp",
			Level:       "advanced",
			Prerequisites: json.RawMessage(`[
				{"category":"programming","skills":[{"name":"python","level":"advanced"}]}
			]`),
			CareerOpportunities: json.RawMessage(`[
				{"title":"NLP算法工程师","description":"文本挖掘与大模型应用"}
			]`),
			Order: 5,
		},
	}

	for i := range defaults {
		db.Create(&defaults[i])
	}
	log.Printf("Seeded %d catalog goals", len(defaults))
}

// seedQuizQuestions 题库为空时写入默认入学测评题
func seedQuizQuestions(db *gorm.DB) {
	var count int64
	db.Model(&model.QuizQuestion{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []model.QuizQuestion{
		{
			Category:   "math",
			Difficulty: "basic",
			Text:       "矩阵A为2x3，矩阵B为3x4，乘积AB的形状是？",
			Options: json.RawMessage(`[
				{"id":"a","text":"2x4","isCorrect":true},
				{"id":"b","text":"3x3","isCorrect":false},
				{"id":"c","text":"4x2","isCorrect":false}
			]`),
			Explanation: "矩阵乘法结果的行数取自左矩阵，列数取自右矩阵",
			Order:       1,
		},
		{
			Category:   "math",
			Difficulty: "intermediate",
			Text:       "函数 f(x) = x^2 在 x=3 处的导数是？",
			Options: json.RawMessage(`[
				{"id":"a","text":"3","isCorrect":false},
				{"id":"b","text":"6","isCorrect":true},
				{"id":"c","text":"9","isCorrect":false}
			]`),
			Explanation: "f'(x) = 2x，代入x=3得6",
			Order:       2,
		},
		{
			Category:   "programming",
			Difficulty: "basic",
			Text:       "以下哪种数据结构遵循先进先出原则？",
			Options: json.RawMessage(`[
				{"id":"a","text":"栈","isCorrect":false},
				{"id":"b","text":"队列","isCorrect":true},
				{"id":"c","text":"哈希表","isCorrect":false}
			]`),
			Order: 3,
		},
		{
			Category:   "programming",
			Difficulty: "advanced",
			Text:       "二分查找在有序数组上的时间复杂度是？",
			Options: json.RawMessage(`[
				{"id":"a","text":"O(n)","isCorrect":false},
				{"id":"b","text":"O(log n)","isCorrect":true},
				{"id":"c","text":"O(n log n)","isCorrect":false}
			]`),
			Order: 4,
		},
		{
			Category:   "ml",
			Difficulty: "basic",
			Text:       "以下哪个属于监督学习任务？",
			Options: json.RawMessage(`[
				{"id":"a","text":"房价预测","isCorrect":true},
				{"id":"b","text":"用户聚类","isCorrect":false},
				{"id":"c","text":"关联规则挖掘","isCorrect":false}
			]`),
			Order: 5,
		},
		{
			Category:   "ml",
			Difficulty: "intermediate",
			Text:       "模型在训练集表现很好但在测试集表现差，这种现象叫？",
			Options: json.RawMessage(`[
				{"id":"a","text":"欠拟合","isCorrect":false},
				{"id":"b","text":"过拟合","isCorrect":true},
				{"id":"c","text":"梯度消失","isCorrect":false}
			]`),
			Explanation: "过拟合指模型记住了训练数据的噪声，泛化能力差",
			Order:       6,
		},
	}

	for i := range defaults {
		db.Create(&defaults[i])
	}
	log.Printf("Seeded %d quiz questions", len(defaults))
}
